// Package checkout implements the multi-step order wizard: collect delivery
// details, collect payment details, review, submit. Submission fabricates an
// Order, appends it to the persisted history, then clears the cart — in that
// order, so a failed persist never loses the cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/savoria/storefront/internal/core/cart"
	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/core/orders"
	"github.com/savoria/storefront/internal/port"
)

// Step is a checkout wizard state.
type Step string

const (
	StepDeliveryInfo Step = "collecting_delivery_info"
	StepPaymentInfo  Step = "collecting_payment_info"
	StepReview       Step = "reviewing_order"
	StepSubmitting   Step = "submitting"
	StepDone         Step = "done"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrWrongStep       = errors.New("operation not allowed in current step")
	ErrPaymentDeclined = errors.New("payment declined")
)

// ValidationError lists the required fields missing from a step submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PaymentAuthorizer decides whether a payment goes through. The default
// authorizer always approves, matching the mock's unconditional success;
// tests inject a declining one.
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, info domain.PaymentInfo, amount float64) error
}

// AlwaysApprove is the default PaymentAuthorizer.
type AlwaysApprove struct{}

func (AlwaysApprove) Authorize(context.Context, domain.PaymentInfo, float64) error { return nil }

// Flow is one checkout session over a cart. Construct with NewFlow, then
// Begin before submitting steps.
type Flow struct {
	mu          sync.Mutex
	cart        *cart.Store
	history     *orders.History
	authorizer  PaymentAuthorizer
	pricing     Pricing
	submitDelay time.Duration
	logger      port.Logger

	step     Step
	mode     domain.FulfillmentMode
	delivery domain.DeliveryInfo
	payment  domain.PaymentInfo
}

// NewFlow wires a checkout session. A nil authorizer means every payment is
// approved; submitDelay simulates the processing latency (tests pass zero).
func NewFlow(cartStore *cart.Store, history *orders.History, authorizer PaymentAuthorizer, pricing Pricing, submitDelay time.Duration) *Flow {
	if authorizer == nil {
		authorizer = AlwaysApprove{}
	}
	return &Flow{
		cart:        cartStore,
		history:     history,
		authorizer:  authorizer,
		pricing:     pricing,
		submitDelay: submitDelay,
		logger:      port.NoOpLogger{},
		mode:        domain.FulfillmentDelivery,
	}
}

func (f *Flow) SetLogger(logger port.Logger) {
	if logger != nil {
		f.logger = logger
	}
}

// Begin starts the wizard. Entry guard: an empty cart cannot be checked out.
func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.cart.Lines()) == 0 {
		return ErrEmptyCart
	}
	f.step = StepDeliveryInfo
	return nil
}

// Step returns the wizard's current state.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Mode returns the selected fulfillment mode.
func (f *Flow) Mode() domain.FulfillmentMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// SubmitDeliveryInfo records the fulfillment mode and contact details and
// advances to payment. Street address and city are required only for
// delivery orders.
func (f *Flow) SubmitDeliveryInfo(mode domain.FulfillmentMode, info domain.DeliveryInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepDeliveryInfo {
		return fmt.Errorf("%w: %s", ErrWrongStep, f.step)
	}

	var missing []string
	if info.FullName == "" {
		missing = append(missing, "fullName")
	}
	if info.Phone == "" {
		missing = append(missing, "phone")
	}
	if info.Email == "" {
		missing = append(missing, "email")
	}
	if mode == domain.FulfillmentDelivery {
		if info.Address == "" {
			missing = append(missing, "address")
		}
		if info.City == "" {
			missing = append(missing, "city")
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	f.mode = mode
	f.delivery = info
	f.step = StepPaymentInfo
	return nil
}

// SubmitPaymentInfo records the card details and advances to review. Fields
// are presence-checked only; no checksum runs in this mock.
func (f *Flow) SubmitPaymentInfo(info domain.PaymentInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPaymentInfo {
		return fmt.Errorf("%w: %s", ErrWrongStep, f.step)
	}

	var missing []string
	if info.CardNumber == "" {
		missing = append(missing, "cardNumber")
	}
	if info.ExpiryDate == "" {
		missing = append(missing, "expiryDate")
	}
	if info.CVV == "" {
		missing = append(missing, "cvv")
	}
	if info.CardholderName == "" {
		missing = append(missing, "cardholderName")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	f.payment = info
	f.step = StepReview
	return nil
}

// Back steps the wizard backwards, preserving everything already entered.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPaymentInfo:
		f.step = StepDeliveryInfo
	case StepReview:
		f.step = StepPaymentInfo
	default:
		return fmt.Errorf("%w: %s", ErrWrongStep, f.step)
	}
	return nil
}

// DeliveryInfo returns the details entered so far, for re-rendering after Back.
func (f *Flow) DeliveryInfo() domain.DeliveryInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delivery
}

// PaymentInfo returns the details entered so far.
func (f *Flow) PaymentInfo() domain.PaymentInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payment
}

// Quote prices the current cart under the selected mode.
func (f *Flow) Quote() Quote {
	f.mu.Lock()
	mode := f.mode
	f.mu.Unlock()
	return f.pricing.QuoteFor(mode, f.cart.Total())
}

// PlaceOrder submits the reviewed order: simulated processing delay, payment
// authorization, order fabrication, history append, cart clear. A declined
// payment or failed persist returns the flow to review with the cart intact.
func (f *Flow) PlaceOrder(ctx context.Context) (domain.Order, error) {
	f.mu.Lock()
	if f.step != StepReview {
		defer f.mu.Unlock()
		return domain.Order{}, fmt.Errorf("%w: %s", ErrWrongStep, f.step)
	}
	f.step = StepSubmitting
	mode := f.mode
	delivery := f.delivery
	payment := f.payment
	f.mu.Unlock()

	fail := func(err error) (domain.Order, error) {
		f.mu.Lock()
		f.step = StepReview
		f.mu.Unlock()
		return domain.Order{}, err
	}

	if err := sleep(ctx, f.submitDelay); err != nil {
		return fail(err)
	}

	lines := f.cart.Lines()
	quote := f.pricing.QuoteFor(mode, f.cart.Total())

	if err := f.authorizer.Authorize(ctx, payment, quote.Total); err != nil {
		f.logger.Info("payment declined", map[string]interface{}{"error": err.Error()})
		return fail(err)
	}

	now := time.Now()
	order := domain.Order{
		ID:             "ORDER-" + uuid.NewString(),
		Items:          lines,
		Subtotal:       quote.Subtotal,
		DeliveryFee:    quote.DeliveryFee,
		Tax:            quote.Tax,
		Total:          quote.Total,
		Mode:           mode,
		Status:         domain.OrderStatusConfirmed,
		PaymentInfo:    payment,
		CreatedAt:      now,
		EstimatedReady: now.Add(f.pricing.EstimatedReadyIn),
	}
	if mode == domain.FulfillmentDelivery {
		order.DeliveryInfo = &delivery
	}

	if err := f.history.Append(ctx, order); err != nil {
		return fail(fmt.Errorf("persist order: %w", err))
	}

	// cart cleared only after the order is safely persisted
	f.cart.Clear(ctx)

	f.mu.Lock()
	f.step = StepDone
	f.mu.Unlock()
	return order, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
