package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"funnel-analytics-service/internal/events/core/domain"
	"funnel-analytics-service/internal/events/core/ports"
	"funnel-analytics-service/internal/period"
)

// fakeResult implements sql.Result.
type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *sql.NullString:
			if row.values[i] == nil {
				*d = sql.NullString{}
				continue
			}
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = sql.NullString{String: v, Valid: true}
		case *sql.NullFloat64:
			if row.values[i] == nil {
				*d = sql.NullFloat64{}
				continue
			}
			v, ok := row.values[i].(float64)
			if !ok {
				return errors.New("type assertion to float64 failed")
			}
			*d = sql.NullFloat64{Float64: v, Valid: true}
		case *[]byte:
			if row.values[i] == nil {
				*d = nil
				continue
			}
			v, ok := row.values[i].([]byte)
			if !ok {
				return errors.New("type assertion to []byte failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB and records the last statement.
type fakeDB struct {
	scanner   *fakeRowScanner
	execErr   error
	queryErr  error
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeResult{}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.scanner, nil
}

func TestInsertEvent_FlatEvent(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	err := repo.InsertEvent(context.Background(), &domain.Event{
		EventID:    "ev-1",
		TenantID:   "t1",
		EventType:  domain.EventViewContent,
		BrandName:  "CROSCROW",
		OccurredAt: occurred,
		Product:    &domain.ProductRef{Name: "Shoes", Image: "https://cdn/shoes.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(db.lastArgs) != 10 {
		t.Fatalf("expected 10 insert args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[0] != "ev-1" || db.lastArgs[1] != "t1" || db.lastArgs[2] != "ViewContent" {
		t.Fatalf("unexpected identity args: %v", db.lastArgs[:3])
	}
	if db.lastArgs[4] != "Shoes" {
		t.Fatalf("expected flat product name, got %v", db.lastArgs[4])
	}
	// Monetary columns stay NULL for flat events.
	if db.lastArgs[6] != nil || db.lastArgs[7] != nil || db.lastArgs[8] != nil {
		t.Fatalf("expected nil monetary columns, got %v", db.lastArgs[6:9])
	}
	if db.lastArgs[9] != occurred {
		t.Fatalf("expected occurred_at %v, got %v", occurred, db.lastArgs[9])
	}
}

func TestInsertEvent_CheckoutEvent(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	value := 29.98
	err := repo.InsertEvent(context.Background(), &domain.Event{
		EventID:    "ev-2",
		TenantID:   "t1",
		EventType:  domain.EventInitiateCheckout,
		OccurredAt: time.Now(),
		Monetary: &domain.Monetary{
			Value:    &value,
			Currency: "USD",
			LineItems: []domain.LineItem{
				{ProductName: "Shoes", ProductImage: "https://cdn/shoes.png", Quantity: 1, Price: 19.99, LinePrice: 19.99},
				{ProductName: "Hat", ProductImage: "N/A", Quantity: 1, Price: 9.99, LinePrice: 9.99},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if db.lastArgs[6] != 29.98 || db.lastArgs[7] != "USD" {
		t.Fatalf("unexpected monetary args: %v %v", db.lastArgs[6], db.lastArgs[7])
	}
	raw, ok := db.lastArgs[8].([]byte)
	if !ok {
		t.Fatalf("expected jsonb line items, got %T", db.lastArgs[8])
	}
	if !strings.Contains(string(raw), `"productName":"Shoes"`) {
		t.Fatalf("line items not serialized: %s", raw)
	}
	// Flat product columns stay NULL for line-item events.
	if db.lastArgs[4] != nil || db.lastArgs[5] != nil {
		t.Fatalf("expected nil product columns, got %v", db.lastArgs[4:6])
	}
}

func TestInsertEvent_ExecError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("connection refused")}
	repo := NewEventRepository(db)

	err := repo.InsertEvent(context.Background(), &domain.Event{
		EventID:   "ev-3",
		TenantID:  "t1",
		EventType: domain.EventAddToCart,
		Product:   &domain.ProductRef{Name: "Hat", Image: "N/A"},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestListEvents_BuildsFilter(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewEventRepository(db)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.ListEvents(context.Background(), ports.EventFilter{
		TenantID:  "t1",
		EventType: "ViewContent",
		Window:    period.Window{Start: &start},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "event_type = $2") {
		t.Fatalf("expected event type filter:\n%s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "occurred_at >= $3") {
		t.Fatalf("expected window lower bound:\n%s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "ORDER BY occurred_at DESC") {
		t.Fatalf("expected descending order:\n%s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 || db.lastArgs[0] != "t1" || db.lastArgs[1] != "ViewContent" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestListEvents_ReconstructsRecords(t *testing.T) {
	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	db := &fakeDB{scanner: &fakeRowScanner{rows: []fakeRow{
		{values: []any{
			"ev-1", "t1", "InitiateCheckout", "CROSCROW",
			nil, nil, 29.98, "USD",
			[]byte(`[{"productName":"Shoes","productImage":"https://cdn/shoes.png","quantity":1,"price":19.99,"linePrice":19.99}]`),
			occurred,
		}},
		{values: []any{
			"ev-2", "t1", "ViewContent", nil,
			"Shoes", "https://cdn/shoes.png", nil, nil,
			nil,
			occurred.Add(-time.Hour),
		}},
	}}}
	repo := NewEventRepository(db)

	events, err := repo.ListEvents(context.Background(), ports.EventFilter{TenantID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	checkout := events[0]
	if checkout.Monetary == nil || checkout.Monetary.Value == nil || *checkout.Monetary.Value != 29.98 {
		t.Fatalf("unexpected monetary: %+v", checkout.Monetary)
	}
	if len(checkout.Monetary.LineItems) != 1 || checkout.Monetary.LineItems[0].ProductName != "Shoes" {
		t.Fatalf("unexpected line items: %+v", checkout.Monetary.LineItems)
	}
	if checkout.Product != nil {
		t.Fatalf("checkout event must not carry a flat product ref")
	}

	view := events[1]
	if view.Product == nil || view.Product.Name != "Shoes" {
		t.Fatalf("unexpected product ref: %+v", view.Product)
	}
	if view.Monetary != nil {
		t.Fatalf("view event must not carry monetary fields")
	}
}

func TestListEvents_EmptyResult(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewEventRepository(db)

	events, err := repo.ListEvents(context.Background(), ports.EventFilter{TenantID: "t1"})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty slice, got %v", events)
	}
}
