package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"funnel-analytics-service/internal/funnel/core/ports"
	"funnel-analytics-service/internal/period"
)

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
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
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

// fakeDB implements DB and records the last query.
type fakeDB struct {
	scanner   *fakeRowScanner
	queryErr  error
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.scanner, nil
}

func TestCountByProduct_FlatStage(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{rows: []fakeRow{
		{values: []any{"Shoes", "https://cdn/shoes.png", int64(10)}},
		{values: []any{nil, nil, int64(3)}},
	}}}
	repo := NewFunnelRepository(db)

	counts, err := repo.CountByProduct(context.Background(), ports.StageFilter{
		TenantID:  "t1",
		EventType: "ViewContent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(counts))
	}
	if counts[0].ProductName != "Shoes" || counts[0].Count != 10 {
		t.Fatalf("unexpected first row: %+v", counts[0])
	}
	// NULL product name comes back as an empty string; dropping it is the
	// aggregator's job, not the store's.
	if counts[1].ProductName != "" || counts[1].Count != 3 {
		t.Fatalf("unexpected second row: %+v", counts[1])
	}

	if strings.Contains(db.lastQuery, "jsonb_array_elements") {
		t.Fatalf("flat stage must not unwind line items:\n%s", db.lastQuery)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[0] != "t1" || db.lastArgs[1] != "ViewContent" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestCountByProduct_LineItemStageUnwinds(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewFunnelRepository(db)

	if _, err := repo.CountByProduct(context.Background(), ports.StageFilter{
		TenantID:      "t1",
		EventType:     "InitiateCheckout",
		FromLineItems: true,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "jsonb_array_elements(line_items)") {
		t.Fatalf("expected line-item unwind in query:\n%s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "li->>'productName'") {
		t.Fatalf("expected grouping by line-item product name:\n%s", db.lastQuery)
	}
}

func TestCountByProduct_WindowBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC)

	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewFunnelRepository(db)

	if _, err := repo.CountByProduct(context.Background(), ports.StageFilter{
		TenantID:  "t1",
		EventType: "ViewContent",
		Window:    period.Window{Start: &start, End: &end},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "occurred_at >= $3") || !strings.Contains(db.lastQuery, "occurred_at <= $4") {
		t.Fatalf("expected inclusive window bounds:\n%s", db.lastQuery)
	}
	if len(db.lastArgs) != 4 || db.lastArgs[2] != start || db.lastArgs[3] != end {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestCountByProduct_EmptyResult(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewFunnelRepository(db)

	counts, err := repo.CountByProduct(context.Background(), ports.StageFilter{
		TenantID:      "t1",
		EventType:     "Purchase",
		FromLineItems: true,
	})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if counts == nil || len(counts) != 0 {
		t.Fatalf("expected empty slice, got %v", counts)
	}
}

func TestCountByProduct_QueryError(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("connection refused")}
	repo := NewFunnelRepository(db)

	if _, err := repo.CountByProduct(context.Background(), ports.StageFilter{
		TenantID:  "t1",
		EventType: "ViewContent",
	}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCountByEventType(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{rows: []fakeRow{
		{values: []any{"ViewContent", int64(12)}},
		{values: []any{"Purchase", int64(3)}},
	}}}
	repo := NewFunnelRepository(db)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	counts, err := repo.CountByEventType(context.Background(), "t1", period.Window{Start: &start})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts["ViewContent"] != 12 || counts["Purchase"] != 3 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if !strings.Contains(db.lastQuery, "occurred_at >= $2") {
		t.Fatalf("expected window lower bound:\n%s", db.lastQuery)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[0] != "t1" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestCountByEventType_EmptyResult(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewFunnelRepository(db)

	counts, err := repo.CountByEventType(context.Background(), "t1", period.Window{})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if counts == nil || len(counts) != 0 {
		t.Fatalf("expected empty map, got %v", counts)
	}
}
