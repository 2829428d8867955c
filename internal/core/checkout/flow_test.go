package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savoria/storefront/internal/adapter/storage"
	"github.com/savoria/storefront/internal/core/cart"
	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/core/orders"
)

type declineAll struct{}

func (declineAll) Authorize(context.Context, domain.PaymentInfo, float64) error {
	return ErrPaymentDeclined
}

func newFixture(t *testing.T) (*cart.Store, *orders.History, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return cart.NewStore(kv), orders.NewHistory(kv), kv
}

func validDelivery() domain.DeliveryInfo {
	return domain.DeliveryInfo{
		FullName: "Alex Morgan",
		Phone:    "+1 555 0100",
		Email:    "alex@example.com",
		Address:  "1 Elm St",
		City:     "Springfield",
		ZipCode:  "01101",
	}
}

func validPayment() domain.PaymentInfo {
	return domain.PaymentInfo{
		CardNumber:     "4242 4242 4242 4242",
		ExpiryDate:     "12/27",
		CVV:            "123",
		CardholderName: "Alex Morgan",
	}
}

func addPizza(t *testing.T, c *cart.Store, qty int) {
	t.Helper()
	c.AddItem(context.Background(), domain.MenuItem{ID: "main-010", Name: "Margherita Pizza", Price: 10.00}, qty, nil)
}

func TestBegin_EmptyCartRejected(t *testing.T) {
	c, h, _ := newFixture(t)
	flow := NewFlow(c, h, nil, DefaultPricing(), 0)

	err := flow.Begin()
	assert.ErrorIs(t, err, ErrEmptyCart)

	// the wizard never reaches payment or review
	assert.ErrorIs(t, flow.SubmitDeliveryInfo(domain.FulfillmentDelivery, validDelivery()), ErrWrongStep)
	assert.ErrorIs(t, flow.SubmitPaymentInfo(validPayment()), ErrWrongStep)
}

func TestDeliveryValidation(t *testing.T) {
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)
	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())

	err := flow.SubmitDeliveryInfo(domain.FulfillmentDelivery, domain.DeliveryInfo{FullName: "Alex"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"phone", "email", "address", "city"}, verr.Fields)
	assert.Equal(t, StepDeliveryInfo, flow.Step(), "transition blocked")
}

func TestPickupSkipsAddressRequirement(t *testing.T) {
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)
	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())

	info := domain.DeliveryInfo{FullName: "Alex", Phone: "+1 555 0100", Email: "alex@example.com"}
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentPickup, info))
	assert.Equal(t, StepPaymentInfo, flow.Step())
}

func TestPaymentValidation(t *testing.T) {
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)
	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentPickup, validDelivery()))

	err := flow.SubmitPaymentInfo(domain.PaymentInfo{CardNumber: "4242"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"expiryDate", "cvv", "cardholderName"}, verr.Fields)
	assert.Equal(t, StepPaymentInfo, flow.Step())
}

func TestBack_PreservesEnteredValues(t *testing.T) {
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)
	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentDelivery, validDelivery()))
	require.NoError(t, flow.SubmitPaymentInfo(validPayment()))
	require.Equal(t, StepReview, flow.Step())

	require.NoError(t, flow.Back())
	assert.Equal(t, StepPaymentInfo, flow.Step())
	assert.Equal(t, validPayment(), flow.PaymentInfo())

	require.NoError(t, flow.Back())
	assert.Equal(t, StepDeliveryInfo, flow.Step())
	assert.Equal(t, validDelivery(), flow.DeliveryInfo())

	// no further back from the first step
	assert.ErrorIs(t, flow.Back(), ErrWrongStep)
}

func TestDeliveryFeeThreshold(t *testing.T) {
	p := DefaultPricing()

	assert.Equal(t, 0.00, p.FeeFor(domain.FulfillmentDelivery, 60.00))
	assert.Equal(t, 4.99, p.FeeFor(domain.FulfillmentDelivery, 40.00))
	assert.Equal(t, 0.00, p.FeeFor(domain.FulfillmentPickup, 40.00))
}

func TestQuote(t *testing.T) {
	p := DefaultPricing()
	q := p.QuoteFor(domain.FulfillmentDelivery, 40.00)

	assert.Equal(t, 40.00, q.Subtotal)
	assert.Equal(t, 4.99, q.DeliveryFee)
	assert.InDelta(t, 3.20, q.Tax, 1e-9)
	assert.InDelta(t, 48.19, q.Total, 1e-9)
}

func TestPlaceOrder_Success(t *testing.T) {
	ctx := context.Background()
	c, h, _ := newFixture(t)
	addPizza(t, c, 2)
	c.AddItem(ctx, domain.MenuItem{ID: "app-010", Name: "Caesar Salad", Price: 5.00}, 1, []string{"no croutons"})
	before := c.Lines()

	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentDelivery, validDelivery()))
	require.NoError(t, flow.SubmitPaymentInfo(validPayment()))

	order, err := flow.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepDone, flow.Step())

	// snapshot matches the pre-submission lines exactly
	require.Len(t, order.Items, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, order.Items[i].ID)
		assert.Equal(t, before[i].Quantity, order.Items[i].Quantity)
		assert.Equal(t, before[i].TotalPrice, order.Items[i].TotalPrice)
	}

	assert.Equal(t, 25.00, order.Subtotal)
	assert.Equal(t, 4.99, order.DeliveryFee)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	require.NotNil(t, order.DeliveryInfo)
	assert.Equal(t, "Alex Morgan", order.DeliveryInfo.FullName)
	assert.True(t, order.EstimatedReady.After(order.CreatedAt))

	// cart empty immediately after
	assert.Empty(t, c.Lines())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.ItemCount())

	// order landed in history
	persisted, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, order.ID, persisted[0].ID)
}

func TestPlaceOrder_PickupHasNoDeliverySnapshot(t *testing.T) {
	ctx := context.Background()
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)

	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentPickup, validDelivery()))
	require.NoError(t, flow.SubmitPaymentInfo(validPayment()))

	order, err := flow.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.Nil(t, order.DeliveryInfo)
	assert.Equal(t, 0.00, order.DeliveryFee)
}

func TestPlaceOrder_DeclineReturnsToReview(t *testing.T) {
	ctx := context.Background()
	c, h, _ := newFixture(t)
	addPizza(t, c, 2)

	flow := NewFlow(c, h, declineAll{}, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentPickup, validDelivery()))
	require.NoError(t, flow.SubmitPaymentInfo(validPayment()))

	_, err := flow.PlaceOrder(ctx)
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Equal(t, StepReview, flow.Step())

	// cart intact, nothing persisted
	assert.Equal(t, 2, c.ItemCount())
	persisted, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestPlaceOrder_OnlyFromReview(t *testing.T) {
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)

	flow := NewFlow(c, h, nil, DefaultPricing(), 0)
	require.NoError(t, flow.Begin())

	_, err := flow.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestPlaceOrder_CancelledContext(t *testing.T) {
	c, h, _ := newFixture(t)
	addPizza(t, c, 1)

	flow := NewFlow(c, h, nil, DefaultPricing(), 50*time.Millisecond) // nonzero delay so ctx wins
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitDeliveryInfo(domain.FulfillmentPickup, validDelivery()))
	require.NoError(t, flow.SubmitPaymentInfo(validPayment()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.PlaceOrder(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, StepReview, flow.Step())
	assert.Equal(t, 1, c.ItemCount())
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242-4242-4242-4242"))
	assert.Equal(t, "4242 42", FormatCardNumber("424242"))
	assert.Equal(t, "", FormatCardNumber(""))
}
