package domain

import "time"

// EventType discriminates the shape of an event's payload.
type EventType string

const (
	EventViewContent      EventType = "ViewContent"
	EventAddToCart        EventType = "AddToCart"
	EventInitiateCheckout EventType = "InitiateCheckout"
	EventPurchase         EventType = "Purchase"
)

// MissingImage is the sentinel stored when a producer sends no product image.
const MissingImage = "N/A"

// Event is the canonical record written at ingestion. It is immutable once
// stored. Exactly one of Product or Monetary is set for the known event
// types; unrecognized types keep whatever flat fields the producer sent.
type Event struct {
	EventID    string
	TenantID   string
	EventType  EventType
	BrandName  string
	OccurredAt time.Time

	// Product is set for ViewContent and AddToCart.
	Product *ProductRef
	// Monetary is set for InitiateCheckout and Purchase.
	Monetary *Monetary
}

// ProductRef is the flat product reference carried by view and add-to-cart
// events.
type ProductRef struct {
	Name  string
	Image string
}

// Monetary carries the order-level fields of checkout and purchase events.
// Value is nil when the producer sent none.
type Monetary struct {
	Value     *float64
	Currency  string
	LineItems []LineItem
}

// LineItem is one product entry within a checkout or purchase. The json tags
// double as the storage layout of the jsonb line_items column.
type LineItem struct {
	ProductID    string  `json:"id,omitempty"`
	VariantID    string  `json:"variantId,omitempty"`
	ProductName  string  `json:"productName"`
	VariantName  string  `json:"variantName,omitempty"`
	ProductImage string  `json:"productImage"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	LinePrice    float64 `json:"linePrice"`
}

// CarriesLineItems reports whether t is one of the event types whose product
// data lives in a line-item list rather than flat fields.
func (t EventType) CarriesLineItems() bool {
	return t == EventInitiateCheckout || t == EventPurchase
}

// IsFunnelStage reports whether t is one of the four stages the funnel
// recognizes. Other types are stored but never aggregated.
func (t EventType) IsFunnelStage() bool {
	switch t {
	case EventViewContent, EventAddToCart, EventInitiateCheckout, EventPurchase:
		return true
	}
	return false
}
