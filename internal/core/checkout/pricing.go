package checkout

import (
	"time"

	"github.com/savoria/storefront/internal/core/domain"
)

// Pricing holds the order cost knobs. Defaults mirror the storefront's
// published rates.
type Pricing struct {
	DeliveryFee      float64
	FreeDeliveryOver float64
	TaxRate          float64
	EstimatedReadyIn time.Duration
}

func DefaultPricing() Pricing {
	return Pricing{
		DeliveryFee:      4.99,
		FreeDeliveryOver: 50.00,
		TaxRate:          0.08,
		EstimatedReadyIn: 45 * time.Minute,
	}
}

// Quote is the priced breakdown of a prospective order.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// FeeFor resolves the delivery fee: zero for pickup, waived for delivery
// subtotals above the free-delivery threshold.
func (p Pricing) FeeFor(mode domain.FulfillmentMode, subtotal float64) float64 {
	if mode != domain.FulfillmentDelivery {
		return 0
	}
	if subtotal > p.FreeDeliveryOver {
		return 0
	}
	return p.DeliveryFee
}

// QuoteFor prices a subtotal under the given fulfillment mode.
func (p Pricing) QuoteFor(mode domain.FulfillmentMode, subtotal float64) Quote {
	fee := p.FeeFor(mode, subtotal)
	tax := subtotal * p.TaxRate
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}
