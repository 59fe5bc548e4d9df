package fiber

import (
	"context"
	"errors"
	"net/http"

	"funnel-analytics-service/internal/funnel/core/domain"
	"funnel-analytics-service/internal/funnel/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type GetFunnelUseCase interface {
	Execute(ctx context.Context, in usecase.GetFunnelInput) ([]domain.FunnelRow, error)
}

type GetEventCountsUseCase interface {
	Execute(ctx context.Context, in usecase.GetEventCountsInput) (map[string]int64, error)
}

type GetTopProductsUseCase interface {
	Execute(ctx context.Context, in usecase.GetTopProductsInput) ([]domain.ProductCount, error)
}

type FunnelHandler struct {
	funnelUC GetFunnelUseCase
	countsUC GetEventCountsUseCase
	topUC    GetTopProductsUseCase
	log      zerolog.Logger
}

func NewFunnelHandler(funnelUC GetFunnelUseCase, countsUC GetEventCountsUseCase, topUC GetTopProductsUseCase, log zerolog.Logger) *FunnelHandler {
	return &FunnelHandler{funnelUC: funnelUC, countsUC: countsUC, topUC: topUC, log: log}
}

// GetProductPerformance godoc
// @Summary Per-product funnel metrics
// @Description Views, adds to cart, checkouts and purchases per product over a period, with conversion rates
// @Tags Funnel
// @Produce json
// @Param storeCode query string true "Store code"
// @Param period query string false "today | yesterday | last24hours | last7days | last30days | all"
// @Success 200 {array} FunnelRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /product-performance [get]
func (h *FunnelHandler) GetProductPerformance(c *fiber.Ctx) error {
	input := usecase.GetFunnelInput{
		TenantID: c.Query("storeCode"),
		Period:   c.Query("period"),
	}

	rows, err := h.funnelUC.Execute(c.UserContext(), input)
	if err != nil {
		return h.mapError(c, input.TenantID, "product performance failed", err)
	}

	resp := make([]FunnelRowResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, toFunnelRowResponse(r))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetEventCounts godoc
// @Summary Event counts per type
// @Description Total occurrences of each event type for a tenant and period
// @Tags Funnel
// @Produce json
// @Param storeCode query string true "Store code"
// @Param period query string false "today | yesterday | last24hours | last7days | last30days | all"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /event-counts [get]
func (h *FunnelHandler) GetEventCounts(c *fiber.Ctx) error {
	input := usecase.GetEventCountsInput{
		TenantID: c.Query("storeCode"),
		Period:   c.Query("period"),
	}

	counts, err := h.countsUC.Execute(c.UserContext(), input)
	if err != nil {
		return h.mapError(c, input.TenantID, "event counts failed", err)
	}

	return c.Status(http.StatusOK).JSON(counts)
}

// GetTopViewedProducts godoc
// @Summary Most viewed products
// @Description The ten most viewed products for a tenant over a period
// @Tags Funnel
// @Produce json
// @Param storeCode query string true "Store code"
// @Param period query string false "today | yesterday | last24hours | last7days | last30days | all"
// @Success 200 {array} TopProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /top-viewed-products [get]
func (h *FunnelHandler) GetTopViewedProducts(c *fiber.Ctx) error {
	return h.topProducts(c, domain.StageViewContent, "top viewed products failed")
}

// GetTopAddedToCartProducts godoc
// @Summary Most added-to-cart products
// @Description The ten most added-to-cart products for a tenant over a period
// @Tags Funnel
// @Produce json
// @Param storeCode query string true "Store code"
// @Param period query string false "today | yesterday | last24hours | last7days | last30days | all"
// @Success 200 {array} TopProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /top-added-to-cart-products [get]
func (h *FunnelHandler) GetTopAddedToCartProducts(c *fiber.Ctx) error {
	return h.topProducts(c, domain.StageAddToCart, "top added-to-cart products failed")
}

func (h *FunnelHandler) topProducts(c *fiber.Ctx, stage, msg string) error {
	input := usecase.GetTopProductsInput{
		TenantID: c.Query("storeCode"),
		Period:   c.Query("period"),
		Stage:    stage,
	}

	counts, err := h.topUC.Execute(c.UserContext(), input)
	if err != nil {
		return h.mapError(c, input.TenantID, msg, err)
	}

	resp := make([]TopProductResponse, 0, len(counts))
	for _, p := range counts {
		resp = append(resp, TopProductResponse{
			ProductName:  p.ProductName,
			ProductImage: p.ProductImage,
			Count:        p.Count,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func (h *FunnelHandler) mapError(c *fiber.Ctx, tenantID, msg string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenant):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_tenant",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrStoreUnavailable):
		h.log.Error().Err(err).Str("store_code", tenantID).Msg(msg)
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "store_unavailable",
		})
	default:
		h.log.Error().Err(err).Str("store_code", tenantID).Msg(msg)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
