// Package checkout drives the shipping -> payment -> success wizard.
package checkout

import (
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/cart"
	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

// Session is the state of one checkout attempt. Payment details are used only
// while SubmitPayment runs and are never kept on the session.
type Session struct {
	Step         domain.CheckoutStep       `json:"step"`
	Shipping     domain.ShippingForm       `json:"shipping"`
	Confirmation *domain.OrderConfirmation `json:"confirmation,omitempty"`
	StartedAt    time.Time                 `json:"started_at"`
}

// CanCheckout reports whether the wizard is actionable for the given cart. An
// empty cart blocks checkout unless the session already reached success, so
// the confirmation stays visible after the cart is cleared. A nil session
// is allowed.
func (s *Session) CanCheckout(c *cart.Cart) bool {
	if s != nil && s.Step == domain.CheckoutStepSuccess {
		return true
	}
	return c != nil && !c.IsEmpty()
}

// Begin starts a checkout at the shipping step, prefilling name and email from
// the user when one is logged in.
func Begin(c *cart.Cart, user *domain.User, now time.Time) (*Session, error) {
	if c == nil || c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	s := &Session{
		Step:      domain.CheckoutStepShipping,
		StartedAt: now,
	}
	if user != nil {
		s.Shipping.Name = user.Name
		s.Shipping.Email = user.Email
	}
	return s, nil
}

// SubmitShipping moves to payment. The cart may have been emptied since Begin,
// so it is checked again here.
func (s *Session) SubmitShipping(form domain.ShippingForm, c *cart.Cart) error {
	if !domain.CanTransitionTo(s.Step, domain.CheckoutStepPayment) {
		return ErrIllegalTransition
	}
	if !s.CanCheckout(c) {
		return ErrEmptyCart
	}
	if missing := form.MissingFields(); len(missing) > 0 {
		return &ValidationError{Step: domain.CheckoutStepShipping, Fields: missing}
	}

	s.Shipping = form
	s.Step = domain.CheckoutStepPayment
	return nil
}

// Back returns from payment to shipping. Shipping data is retained.
func (s *Session) Back() error {
	if s.Step != domain.CheckoutStepPayment {
		return ErrIllegalTransition
	}
	s.Step = domain.CheckoutStepShipping
	return nil
}

// SubmitPayment completes the purchase. Lines and totals are captured before
// the cart is cleared, and both happen before it returns.
func (s *Session) SubmitPayment(form domain.PaymentForm, c *cart.Cart, now time.Time) (*domain.OrderConfirmation, error) {
	if !domain.CanTransitionTo(s.Step, domain.CheckoutStepSuccess) {
		return nil, ErrIllegalTransition
	}
	if missing := form.MissingFields(); len(missing) > 0 {
		return nil, &ValidationError{Step: domain.CheckoutStepPayment, Fields: missing}
	}
	if c == nil || c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	confirmation := &domain.OrderConfirmation{
		OrderID:           NewOrderID(),
		CustomerName:      s.Shipping.Name,
		CustomerEmail:     s.Shipping.Email,
		Lines:             c.Lines(),
		Totals:            c.Totals(),
		MaskedCardNumber:  form.MaskedCardNumber(),
		EstimatedDelivery: domain.EstimatedDelivery,
		ShipmentStatus:    domain.ShipmentStatusProcessing,
		PlacedAt:          now,
	}

	s.Step = domain.CheckoutStepSuccess
	s.Confirmation = confirmation
	c.Clear()

	return confirmation, nil
}
