package fiber

import (
	"encoding/json"
	"time"

	"funnel-analytics-service/internal/events/core/domain"
)

// TrackEventRequest is the pixel tracker's payload. The client timestamp is
// accepted for forward compatibility but ignored; occurredAt is stamped
// server-side. Contents entries stay raw so a malformed item can be dropped
// without rejecting the event.
// @Description Ingestion event DTO
type TrackEventRequest struct {
	StoreCode    string            `json:"storeCode"`
	EventName    string            `json:"eventName"`
	BrandName    string            `json:"brandName"`
	ProductName  string            `json:"productName"`
	ProductImage string            `json:"productImage"`
	Value        *float64          `json:"value"`
	Currency     string            `json:"currency"`
	Contents     []json.RawMessage `json:"contents"`
	Timestamp    string            `json:"timestamp"`
}

type TrackEventResponse struct {
	Status  string `json:"status"`
	EventID string `json:"eventId,omitempty"`
}

type LineItemResponse struct {
	ProductID    string  `json:"id,omitempty"`
	VariantID    string  `json:"variantId,omitempty"`
	ProductName  string  `json:"productName"`
	VariantName  string  `json:"variantName,omitempty"`
	ProductImage string  `json:"productImage"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	LinePrice    float64 `json:"linePrice"`
}

type EventResponse struct {
	EventID      string             `json:"eventId"`
	StoreCode    string             `json:"storeCode"`
	EventName    string             `json:"eventName"`
	BrandName    string             `json:"brandName,omitempty"`
	ProductName  string             `json:"productName,omitempty"`
	ProductImage string             `json:"productImage,omitempty"`
	Value        *float64           `json:"value,omitempty"`
	Currency     string             `json:"currency,omitempty"`
	Contents     []LineItemResponse `json:"contents,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message" example:"storeCode and eventName are required"`
}

func toEventResponse(e domain.Event) EventResponse {
	resp := EventResponse{
		EventID:   e.EventID,
		StoreCode: e.TenantID,
		EventName: string(e.EventType),
		BrandName: e.BrandName,
		Timestamp: e.OccurredAt,
	}

	if e.Product != nil {
		resp.ProductName = e.Product.Name
		resp.ProductImage = e.Product.Image
	}
	if e.Monetary != nil {
		resp.Value = e.Monetary.Value
		resp.Currency = e.Monetary.Currency
		for _, li := range e.Monetary.LineItems {
			resp.Contents = append(resp.Contents, LineItemResponse{
				ProductID:    li.ProductID,
				VariantID:    li.VariantID,
				ProductName:  li.ProductName,
				VariantName:  li.VariantName,
				ProductImage: li.ProductImage,
				Quantity:     li.Quantity,
				Price:        li.Price,
				LinePrice:    li.LinePrice,
			})
		}
	}

	return resp
}
