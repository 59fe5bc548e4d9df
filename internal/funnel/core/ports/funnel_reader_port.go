package ports

import (
	"context"

	"funnel-analytics-service/internal/funnel/core/domain"
	"funnel-analytics-service/internal/period"
)

// StageFilter selects one stage's events for grouped counting. When
// FromLineItems is set the store counts each line item of a matching event as
// its own row (the unwind), grouped by the item's product identity; otherwise
// it groups by the event's flat product fields.
type StageFilter struct {
	TenantID      string
	EventType     string
	Window        period.Window
	FromLineItems bool
}

// FunnelReaderPort is the read side of the event store the aggregator
// consumes. Both operations return empty results, not errors, when nothing
// matches.
type FunnelReaderPort interface {
	CountByProduct(ctx context.Context, f StageFilter) ([]domain.ProductCount, error)
	CountByEventType(ctx context.Context, tenantID string, w period.Window) (map[string]int64, error)
}
