package usecase

import (
	"context"
	"fmt"
	"time"

	"funnel-analytics-service/internal/funnel/core/ports"
	"funnel-analytics-service/internal/period"
)

// GetEventCountsUseCase serves the dashboard's stat cards: total occurrences
// per event type for one tenant and window.
type GetEventCountsUseCase struct {
	reader ports.FunnelReaderPort
	now    func() time.Time
}

func NewGetEventCountsUseCase(reader ports.FunnelReaderPort) *GetEventCountsUseCase {
	return &GetEventCountsUseCase{
		reader: reader,
		now:    time.Now,
	}
}

func (uc *GetEventCountsUseCase) WithClock(now func() time.Time) *GetEventCountsUseCase {
	uc.now = now
	return uc
}

type GetEventCountsInput struct {
	TenantID string
	Period   string
}

func (uc *GetEventCountsUseCase) Execute(ctx context.Context, in GetEventCountsInput) (map[string]int64, error) {
	if in.TenantID == "" {
		return nil, ErrInvalidTenant
	}

	counts, err := uc.reader.CountByEventType(ctx, in.TenantID, period.Resolve(in.Period, uc.now()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	if counts == nil {
		counts = map[string]int64{}
	}

	return counts, nil
}
