package domain

// Funnel stage names as stored on event records. Kept as plain strings here
// so the funnel module does not depend on the ingestion module's types.
const (
	StageViewContent      = "ViewContent"
	StageAddToCart        = "AddToCart"
	StageInitiateCheckout = "InitiateCheckout"
	StagePurchase         = "Purchase"
)

// MissingImage matches the ingestion sentinel for absent product images.
const MissingImage = "N/A"

// ProductCount is one grouped-count row: how often a product appeared in a
// single stage within the window.
type ProductCount struct {
	ProductName  string
	ProductImage string
	Count        int64
}

// FunnelRow is the per-product view across all four stages. A product absent
// from a stage has count 0, never a missing row.
type FunnelRow struct {
	ProductName  string
	ProductImage string
	Views        int64
	AddsToCart   int64
	Checkouts    int64
	Purchases    int64
}

// AddToCartRate is adds/views as a percentage, 0 when there are no views.
func (r FunnelRow) AddToCartRate() float64 {
	return rate(r.AddsToCart, r.Views)
}

// CheckoutRate is checkouts/adds as a percentage, 0 when there are no adds.
func (r FunnelRow) CheckoutRate() float64 {
	return rate(r.Checkouts, r.AddsToCart)
}

// ViewToCheckoutRate is checkouts/views as a percentage, 0 when there are no
// views.
func (r FunnelRow) ViewToCheckoutRate() float64 {
	return rate(r.Checkouts, r.Views)
}

func rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
