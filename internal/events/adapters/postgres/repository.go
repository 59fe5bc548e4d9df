package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"funnel-analytics-service/internal/events/core/domain"
	"funnel-analytics-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO events (
    event_id,
    tenant_id,
    event_type,
    brand_name,
    product_name,
    product_image,
    value,
    currency,
    line_items,
    occurred_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10
);
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	var productName, productImage any
	if e.Product != nil {
		productName = e.Product.Name
		productImage = e.Product.Image
	}

	var value, currency, lineItems any
	if e.Monetary != nil {
		if e.Monetary.Value != nil {
			value = *e.Monetary.Value
		}
		if e.Monetary.Currency != "" {
			currency = e.Monetary.Currency
		}
		b, err := json.Marshal(e.Monetary.LineItems)
		if err != nil {
			return fmt.Errorf("marshal line items: %w", err)
		}
		lineItems = b
	}

	var brandName any
	if e.BrandName != "" {
		brandName = e.BrandName
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.TenantID,
		string(e.EventType),
		brandName,
		productName,
		productImage,
		value,
		currency,
		lineItems,
		e.OccurredAt,
	)
	return err
}

const listEventsSQL = `
SELECT
    event_id,
    tenant_id,
    event_type,
    brand_name,
    product_name,
    product_image,
    value,
    currency,
    line_items,
    occurred_at
FROM events
WHERE tenant_id = $1`

func (r *EventRepository) ListEvents(ctx context.Context, f ports.EventFilter) ([]domain.Event, error) {
	query := listEventsSQL
	args := []any{f.TenantID}
	argIndex := 2

	if f.EventType != "" {
		query += fmt.Sprintf(" AND event_type = $%d", argIndex)
		args = append(args, f.EventType)
		argIndex++
	}
	if f.Window.Start != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", argIndex)
		args = append(args, *f.Window.Start)
		argIndex++
	}
	if f.Window.End != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", argIndex)
		args = append(args, *f.Window.End)
		argIndex++
	}
	query += " ORDER BY occurred_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var (
			e            domain.Event
			eventType    string
			brandName    sql.NullString
			productName  sql.NullString
			productImage sql.NullString
			value        sql.NullFloat64
			currency     sql.NullString
			lineItems    []byte
			occurredAt   time.Time
		)
		if err := rows.Scan(
			&e.EventID,
			&e.TenantID,
			&eventType,
			&brandName,
			&productName,
			&productImage,
			&value,
			&currency,
			&lineItems,
			&occurredAt,
		); err != nil {
			return nil, err
		}

		e.EventType = domain.EventType(eventType)
		e.BrandName = brandName.String
		e.OccurredAt = occurredAt

		switch {
		case e.EventType.CarriesLineItems():
			m := &domain.Monetary{Currency: currency.String}
			if value.Valid {
				v := value.Float64
				m.Value = &v
			}
			if len(lineItems) > 0 {
				if err := json.Unmarshal(lineItems, &m.LineItems); err != nil {
					return nil, fmt.Errorf("unmarshal line items for event %s: %w", e.EventID, err)
				}
			}
			e.Monetary = m
		case productName.Valid || productImage.Valid:
			e.Product = &domain.ProductRef{
				Name:  productName.String,
				Image: productImage.String,
			}
		}

		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
