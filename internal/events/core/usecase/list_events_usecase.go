package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"funnel-analytics-service/internal/events/core/domain"
	"funnel-analytics-service/internal/events/core/ports"
	"funnel-analytics-service/internal/period"
)

var (
	ErrInvalidTenant    = errors.New("storeCode is required")
	ErrStoreUnavailable = errors.New("event store unavailable")
)

// ListEventsUseCase serves the dashboard's raw event view.
type ListEventsUseCase struct {
	repo ports.EventRepositoryPort
	now  func() time.Time
}

func NewListEventsUseCase(repo ports.EventRepositoryPort) *ListEventsUseCase {
	return &ListEventsUseCase{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ListEventsUseCase) WithClock(now func() time.Time) *ListEventsUseCase {
	uc.now = now
	return uc
}

type ListEventsInput struct {
	TenantID  string
	EventType string // "" or "all" means every type
	Period    string
}

// Execute lists a tenant's events, newest first, within the resolved window.
func (uc *ListEventsUseCase) Execute(ctx context.Context, in ListEventsInput) ([]domain.Event, error) {
	if in.TenantID == "" {
		return nil, ErrInvalidTenant
	}

	eventType := in.EventType
	if eventType == "all" {
		eventType = ""
	}

	f := ports.EventFilter{
		TenantID:  in.TenantID,
		EventType: eventType,
		Window:    period.Resolve(in.Period, uc.now()),
	}

	events, err := uc.repo.ListEvents(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return events, nil
}
