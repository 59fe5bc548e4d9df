package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"funnel-analytics-service/internal/funnel/core/usecase"
	"funnel-analytics-service/internal/period"
)

func TestGetEventCounts_Success(t *testing.T) {
	fixedNow := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	var gotTenant string
	var gotWindow period.Window
	reader := &fakeFunnelReader{
		CountByEventTypeFn: func(ctx context.Context, tenantID string, w period.Window) (map[string]int64, error) {
			gotTenant = tenantID
			gotWindow = w
			return map[string]int64{"ViewContent": 12, "Purchase": 3}, nil
		},
	}

	uc := usecase.NewGetEventCountsUseCase(reader).WithClock(func() time.Time { return fixedNow })
	counts, err := uc.Execute(context.Background(), usecase.GetEventCountsInput{
		TenantID: "t1",
		Period:   "last7days",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTenant != "t1" {
		t.Fatalf("expected tenant t1, got %q", gotTenant)
	}
	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if gotWindow.Start == nil || !gotWindow.Start.Equal(wantStart) {
		t.Fatalf("expected window start %v, got %v", wantStart, gotWindow.Start)
	}
	if counts["ViewContent"] != 12 || counts["Purchase"] != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestGetEventCounts_EmptyStoreYieldsEmptyMap(t *testing.T) {
	reader := &fakeFunnelReader{
		CountByEventTypeFn: func(ctx context.Context, tenantID string, w period.Window) (map[string]int64, error) {
			return nil, nil
		},
	}

	uc := usecase.NewGetEventCountsUseCase(reader)
	counts, err := uc.Execute(context.Background(), usecase.GetEventCountsInput{TenantID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts == nil || len(counts) != 0 {
		t.Fatalf("expected empty map, got %v", counts)
	}
}

func TestGetEventCounts_InvalidTenant(t *testing.T) {
	uc := usecase.NewGetEventCountsUseCase(&fakeFunnelReader{})

	_, err := uc.Execute(context.Background(), usecase.GetEventCountsInput{})
	if !errors.Is(err, usecase.ErrInvalidTenant) {
		t.Fatalf("expected ErrInvalidTenant, got %v", err)
	}
}

func TestGetEventCounts_StoreError(t *testing.T) {
	reader := &fakeFunnelReader{
		CountByEventTypeFn: func(ctx context.Context, tenantID string, w period.Window) (map[string]int64, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := usecase.NewGetEventCountsUseCase(reader)
	_, err := uc.Execute(context.Background(), usecase.GetEventCountsInput{TenantID: "t1"})
	if !errors.Is(err, usecase.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
