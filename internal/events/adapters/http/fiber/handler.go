package fiber

import (
	"context"
	"errors"
	"net/http"

	"funnel-analytics-service/internal/events/core/domain"
	"funnel-analytics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type TrackEventUseCase interface {
	Execute(ctx context.Context, in usecase.TrackEventInput) (*domain.Event, error)
}

type ListEventsUseCase interface {
	Execute(ctx context.Context, in usecase.ListEventsInput) ([]domain.Event, error)
}

type EventHandler struct {
	trackUC TrackEventUseCase
	listUC  ListEventsUseCase
	log     zerolog.Logger
}

func NewEventHandler(trackUC TrackEventUseCase, listUC ListEventsUseCase, log zerolog.Logger) *EventHandler {
	return &EventHandler{trackUC: trackUC, listUC: listUC, log: log}
}

// TrackEvent godoc
// @Summary Ingest a storefront event
// @Description Normalizes and stores one tracking event; occurredAt is server-assigned
// @Tags Events
// @Accept json
// @Produce json
// @Param request body TrackEventRequest true "Event payload"
// @Success 201 {object} TrackEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /track-event [post]
func (h *EventHandler) TrackEvent(c *fiber.Ctx) error {
	var req TrackEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.TrackEventInput{
		TenantID:     req.StoreCode,
		EventType:    req.EventName,
		BrandName:    req.BrandName,
		ProductName:  req.ProductName,
		ProductImage: req.ProductImage,
		Value:        req.Value,
		Currency:     req.Currency,
		Contents:     req.Contents,
	}

	e, err := h.trackUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
		default:
			h.log.Error().Err(err).Str("store_code", req.StoreCode).Msg("track event failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(TrackEventResponse{
		Status:  "tracked",
		EventID: e.EventID,
	})
}

// ListEvents godoc
// @Summary List raw events
// @Description Returns a tenant's events newest first, optionally filtered by type and period
// @Tags Events
// @Produce json
// @Param storeCode query string true "Store code"
// @Param event query string false "Event type filter; 'all' disables it"
// @Param period query string false "today | yesterday | last24hours | last7days | last30days | all"
// @Success 200 {array} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /data [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	input := usecase.ListEventsInput{
		TenantID:  c.Query("storeCode"),
		EventType: c.Query("event"),
		Period:    c.Query("period"),
	}

	events, err := h.listUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTenant):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_tenant",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrStoreUnavailable):
			h.log.Error().Err(err).Str("store_code", input.TenantID).Msg("list events failed")
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "store_unavailable",
			})
		default:
			h.log.Error().Err(err).Str("store_code", input.TenantID).Msg("list events failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}

	return c.Status(http.StatusOK).JSON(resp)
}
