package fiber

import "funnel-analytics-service/internal/funnel/core/domain"

type FunnelRowResponse struct {
	ProductName        string  `json:"productName"`
	ProductImage       string  `json:"productImage"`
	Views              int64   `json:"views"`
	AddsToCart         int64   `json:"atcs"`
	Checkouts          int64   `json:"checkouts"`
	Purchases          int64   `json:"purchases"`
	AddToCartRate      float64 `json:"addToCartRate"`
	CheckoutRate       float64 `json:"checkoutRate"`
	ViewToCheckoutRate float64 `json:"viewToCheckoutRate"`
}

type TopProductResponse struct {
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	Count        int64  `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_tenant"`
	Message string `json:"message" example:"storeCode is required"`
}

func toFunnelRowResponse(r domain.FunnelRow) FunnelRowResponse {
	return FunnelRowResponse{
		ProductName:        r.ProductName,
		ProductImage:       r.ProductImage,
		Views:              r.Views,
		AddsToCart:         r.AddsToCart,
		Checkouts:          r.Checkouts,
		Purchases:          r.Purchases,
		AddToCartRate:      r.AddToCartRate(),
		CheckoutRate:       r.CheckoutRate(),
		ViewToCheckoutRate: r.ViewToCheckoutRate(),
	}
}
