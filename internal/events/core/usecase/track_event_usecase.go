package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"funnel-analytics-service/internal/events/core/domain"
	"funnel-analytics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("storeCode and eventName are required")

// TrackEventUseCase normalizes an untrusted ingestion payload into a
// canonical event record and appends it to the store.
type TrackEventUseCase struct {
	repo ports.EventRepositoryPort
	now  func() time.Time
}

func NewTrackEventUseCase(repo ports.EventRepositoryPort) *TrackEventUseCase {
	return &TrackEventUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the server clock. Tests use it to pin OccurredAt.
func (uc *TrackEventUseCase) WithClock(now func() time.Time) *TrackEventUseCase {
	uc.now = now
	return uc
}

// TrackEventInput is the raw payload after JSON decoding. Contents stays as
// raw messages so that one malformed line item can be dropped without
// rejecting the whole event.
type TrackEventInput struct {
	TenantID     string
	EventType    string
	BrandName    string
	ProductName  string
	ProductImage string
	Value        *float64
	Currency     string
	Contents     []json.RawMessage
}

// Execute validates, shapes and stores one event. The client may send its own
// timestamp but OccurredAt is always stamped from the server clock; client
// clocks are not trusted for windowing.
func (uc *TrackEventUseCase) Execute(ctx context.Context, in TrackEventInput) (*domain.Event, error) {
	if in.TenantID == "" || in.EventType == "" {
		return nil, ErrValidation
	}

	e := &domain.Event{
		EventID:    uuid.New().String(),
		TenantID:   in.TenantID,
		EventType:  domain.EventType(in.EventType),
		BrandName:  in.BrandName,
		OccurredAt: uc.now().UTC(),
	}

	switch {
	case e.EventType.CarriesLineItems():
		e.Monetary = &domain.Monetary{
			Value:     in.Value,
			Currency:  in.Currency,
			LineItems: normalizeLineItems(in.Contents),
		}
	case e.EventType.IsFunnelStage():
		image := in.ProductImage
		if image == "" {
			image = domain.MissingImage
		}
		e.Product = &domain.ProductRef{
			Name:  in.ProductName,
			Image: image,
		}
	default:
		// Unrecognized event type: keep whatever flat fields arrived so the
		// raw event view still shows them. The funnel ignores these.
		if in.ProductName != "" || in.ProductImage != "" {
			e.Product = &domain.ProductRef{
				Name:  in.ProductName,
				Image: in.ProductImage,
			}
		}
	}

	if err := uc.repo.InsertEvent(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// normalizeLineItems decodes each content entry on its own. Entries that fail
// to decode are dropped so the funnel still counts the parseable items.
func normalizeLineItems(contents []json.RawMessage) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(contents))

	for _, raw := range contents {
		var payload lineItemPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			continue
		}

		image := payload.ProductImage
		if image == "" {
			image = domain.MissingImage
		}

		items = append(items, domain.LineItem{
			ProductID:    string(payload.ID),
			VariantID:    string(payload.VariantID),
			ProductName:  payload.ProductName,
			VariantName:  payload.VariantName,
			ProductImage: image,
			Quantity:     payload.Quantity,
			Price:        payload.Price,
			LinePrice:    payload.LinePrice,
		})
	}

	return items
}

// lineItemPayload mirrors the tracker's contents entry.
type lineItemPayload struct {
	ID           flexID  `json:"id"`
	VariantID    flexID  `json:"variantId"`
	ProductName  string  `json:"productName"`
	VariantName  string  `json:"variantName"`
	ProductImage string  `json:"productImage"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	LinePrice    float64 `json:"linePrice"`
}

// flexID accepts both the numeric ids Shopify cart items carry and the string
// id fragments customer events send.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}
