package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"funnel-analytics-service/internal/funnel/core/domain"
	"funnel-analytics-service/internal/funnel/core/ports"
	"funnel-analytics-service/internal/period"
)

type FunnelRepository struct {
	db DB
}

func NewFunnelRepository(db DB) *FunnelRepository {
	return &FunnelRepository{db: db}
}

var _ ports.FunnelReaderPort = (*FunnelRepository)(nil)

// jsonb_array_elements expands each event's line-item list into one row per
// item, so an event with three items contributes three grouping rows. Events
// with a NULL line_items column simply produce no rows.
const countLineItemsSQL = `
SELECT
    li->>'productName' AS product_name,
    li->>'productImage' AS product_image,
    COUNT(*) AS total
FROM events
CROSS JOIN LATERAL jsonb_array_elements(line_items) AS li
WHERE tenant_id = $1 AND event_type = $2%s
GROUP BY 1, 2
`

const countFlatSQL = `
SELECT
    product_name,
    product_image,
    COUNT(*) AS total
FROM events
WHERE tenant_id = $1 AND event_type = $2%s
GROUP BY product_name, product_image
`

func (r *FunnelRepository) CountByProduct(ctx context.Context, f ports.StageFilter) ([]domain.ProductCount, error) {
	where, args := windowClause(f.Window, []any{f.TenantID, f.EventType})

	template := countFlatSQL
	if f.FromLineItems {
		template = countLineItemsSQL
	}
	query := fmt.Sprintf(template, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count %s by product: %w", f.EventType, err)
	}
	defer rows.Close()

	counts := []domain.ProductCount{}
	for rows.Next() {
		var name, image sql.NullString
		var total int64
		if err := rows.Scan(&name, &image, &total); err != nil {
			return nil, err
		}
		counts = append(counts, domain.ProductCount{
			ProductName:  name.String,
			ProductImage: image.String,
			Count:        total,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

const countByTypeSQL = `
SELECT event_type, COUNT(*) AS total
FROM events
WHERE tenant_id = $1%s
GROUP BY event_type
`

func (r *FunnelRepository) CountByEventType(ctx context.Context, tenantID string, w period.Window) (map[string]int64, error) {
	where, args := windowClause(w, []any{tenantID})
	query := fmt.Sprintf(countByTypeSQL, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count events by type: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var eventType string
		var total int64
		if err := rows.Scan(&eventType, &total); err != nil {
			return nil, err
		}
		counts[eventType] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// windowClause appends inclusive occurred_at bounds to an arg list and
// returns the matching SQL fragment.
func windowClause(w period.Window, args []any) (string, []any) {
	var clause string
	if w.Start != nil {
		args = append(args, *w.Start)
		clause += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if w.End != nil {
		args = append(args, *w.End)
		clause += fmt.Sprintf(" AND occurred_at <= $%d", len(args))
	}
	return clause, args
}
