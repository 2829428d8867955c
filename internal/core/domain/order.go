package domain

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

type FulfillmentMode string

const (
	FulfillmentDelivery FulfillmentMode = "delivery"
	FulfillmentPickup   FulfillmentMode = "pickup"
)

// DeliveryInfo is the contact and address snapshot collected during checkout.
type DeliveryInfo struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Instructions string `json:"instructions,omitempty"`
}

// PaymentInfo is the card detail snapshot. Presence-checked only; this is a
// mock boundary, nothing is ever charged.
type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// Order is fabricated at checkout submission: a snapshot of the cart lines
// plus computed pricing. Immutable once created and appended to history.
type Order struct {
	ID             string          `json:"id"`
	Items          []CartLine      `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	DeliveryFee    float64         `json:"deliveryFee"`
	Tax            float64         `json:"tax"`
	Total          float64         `json:"total"`
	Mode           FulfillmentMode `json:"orderType"`
	Status         OrderStatus     `json:"status"`
	DeliveryInfo   *DeliveryInfo   `json:"deliveryInfo,omitempty"` // nil for pickup orders
	PaymentInfo    PaymentInfo     `json:"paymentInfo"`
	CreatedAt      time.Time       `json:"createdAt"`
	EstimatedReady time.Time       `json:"estimatedDelivery"`
}
