package ports

import (
	"context"

	"funnel-analytics-service/internal/events/core/domain"
	"funnel-analytics-service/internal/period"
)

// EventFilter narrows a listing query. EventType is optional; empty means
// every type. The window bounds are inclusive.
type EventFilter struct {
	TenantID  string
	EventType string
	Window    period.Window
}

// EventRepositoryPort is the append-only event store the core writes to and
// lists from. ListEvents returns records in descending OccurredAt order; an
// empty result is an empty slice, not an error.
type EventRepositoryPort interface {
	InsertEvent(ctx context.Context, e *domain.Event) error
	ListEvents(ctx context.Context, f EventFilter) ([]domain.Event, error)
}
