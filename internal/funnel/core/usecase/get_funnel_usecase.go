package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"funnel-analytics-service/internal/funnel/core/domain"
	"funnel-analytics-service/internal/funnel/core/ports"
	"funnel-analytics-service/internal/period"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidTenant    = errors.New("storeCode is required")
	ErrStoreUnavailable = errors.New("event store unavailable")
)

const defaultQueryTimeout = 10 * time.Second

// GetFunnelUseCase computes the per-product funnel over a time window. The
// four stage counts run concurrently under one shared deadline; if any of
// them fails or times out the whole request fails, because a funnel with a
// missing stage reads as real data.
type GetFunnelUseCase struct {
	reader  ports.FunnelReaderPort
	timeout time.Duration
	now     func() time.Time
}

func NewGetFunnelUseCase(reader ports.FunnelReaderPort) *GetFunnelUseCase {
	return &GetFunnelUseCase{
		reader:  reader,
		timeout: defaultQueryTimeout,
		now:     time.Now,
	}
}

// WithQueryTimeout overrides the shared deadline for the stage queries.
func (uc *GetFunnelUseCase) WithQueryTimeout(d time.Duration) *GetFunnelUseCase {
	if d > 0 {
		uc.timeout = d
	}
	return uc
}

func (uc *GetFunnelUseCase) WithClock(now func() time.Time) *GetFunnelUseCase {
	uc.now = now
	return uc
}

type GetFunnelInput struct {
	TenantID string
	Period   string
}

// stages lists the four funnel stages in merge order. Merge order is a
// convention only; the result is an additive union and identical under any
// permutation.
var stages = []struct {
	eventType     string
	fromLineItems bool
	add           func(r *domain.FunnelRow, n int64)
}{
	{domain.StageViewContent, false, func(r *domain.FunnelRow, n int64) { r.Views += n }},
	{domain.StageAddToCart, false, func(r *domain.FunnelRow, n int64) { r.AddsToCart += n }},
	{domain.StageInitiateCheckout, true, func(r *domain.FunnelRow, n int64) { r.Checkouts += n }},
	{domain.StagePurchase, true, func(r *domain.FunnelRow, n int64) { r.Purchases += n }},
}

// Execute returns one row per distinct product name seen in any stage,
// ordered by views descending then name.
func (uc *GetFunnelUseCase) Execute(ctx context.Context, in GetFunnelInput) ([]domain.FunnelRow, error) {
	if in.TenantID == "" {
		return nil, ErrInvalidTenant
	}

	w := period.Resolve(in.Period, uc.now())

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	counts := make([][]domain.ProductCount, len(stages))
	g, gctx := errgroup.WithContext(ctx)
	for i, st := range stages {
		i, st := i, st
		g.Go(func() error {
			rows, err := uc.reader.CountByProduct(gctx, ports.StageFilter{
				TenantID:      in.TenantID,
				EventType:     st.eventType,
				Window:        w,
				FromLineItems: st.fromLineItems,
			})
			if err != nil {
				return err
			}
			counts[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return mergeStages(counts), nil
}

// mergeStages folds the stage count lists into one row per product name.
// Products entering the funnel at a later stage get a zero-initialized row;
// rows without a product name cannot be attributed and are dropped.
func mergeStages(counts [][]domain.ProductCount) []domain.FunnelRow {
	byName := make(map[string]*domain.FunnelRow)

	for i, st := range stages {
		for _, c := range counts[i] {
			if c.ProductName == "" {
				continue
			}
			row, ok := byName[c.ProductName]
			if !ok {
				row = &domain.FunnelRow{
					ProductName:  c.ProductName,
					ProductImage: domain.MissingImage,
				}
				byName[c.ProductName] = row
			}
			if row.ProductImage == domain.MissingImage && c.ProductImage != "" && c.ProductImage != domain.MissingImage {
				row.ProductImage = c.ProductImage
			}
			st.add(row, c.Count)
		}
	}

	rows := make([]domain.FunnelRow, 0, len(byName))
	for _, r := range byName {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Views != rows[j].Views {
			return rows[i].Views > rows[j].Views
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows
}
