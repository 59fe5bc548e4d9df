package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"funnel-analytics-service/internal/funnel/core/domain"
	"funnel-analytics-service/internal/funnel/core/ports"
	"funnel-analytics-service/internal/period"
)

// topProductsLimit caps the dashboard's top-products widgets.
const topProductsLimit = 10

// GetTopProductsUseCase ranks products by how often they appeared in a single
// stage within a window. It backs the top-viewed and top-added-to-cart
// dashboard widgets.
type GetTopProductsUseCase struct {
	reader ports.FunnelReaderPort
	limit  int
	now    func() time.Time
}

func NewGetTopProductsUseCase(reader ports.FunnelReaderPort) *GetTopProductsUseCase {
	return &GetTopProductsUseCase{
		reader: reader,
		limit:  topProductsLimit,
		now:    time.Now,
	}
}

func (uc *GetTopProductsUseCase) WithClock(now func() time.Time) *GetTopProductsUseCase {
	uc.now = now
	return uc
}

type GetTopProductsInput struct {
	TenantID string
	Period   string
	Stage    string
}

// Execute returns up to ten products ordered by count descending then name.
// Rows without a product name cannot be attributed and are dropped, like in
// the funnel merge.
func (uc *GetTopProductsUseCase) Execute(ctx context.Context, in GetTopProductsInput) ([]domain.ProductCount, error) {
	if in.TenantID == "" {
		return nil, ErrInvalidTenant
	}

	counts, err := uc.reader.CountByProduct(ctx, ports.StageFilter{
		TenantID:      in.TenantID,
		EventType:     in.Stage,
		Window:        period.Resolve(in.Period, uc.now()),
		FromLineItems: in.Stage == domain.StageInitiateCheckout || in.Stage == domain.StagePurchase,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	ranked := make([]domain.ProductCount, 0, len(counts))
	for _, c := range counts {
		if c.ProductName == "" {
			continue
		}
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})

	if len(ranked) > uc.limit {
		ranked = ranked[:uc.limit]
	}
	return ranked, nil
}
