package domain

type CheckoutStep string

const (
	CheckoutStepShipping CheckoutStep = "shipping"
	CheckoutStepPayment  CheckoutStep = "payment"
	CheckoutStepSuccess  CheckoutStep = "success"
)

func (s CheckoutStep) IsTerminal() bool {
	return s == CheckoutStepSuccess
}

// String representation (for logging)
func (s CheckoutStep) String() string {
	return string(s)
}

// CanTransitionTo reports whether the wizard may move from one step to another.
// The only backwards edge is payment -> shipping.
func CanTransitionTo(from, to CheckoutStep) bool {
	switch from {
	case CheckoutStepShipping:
		return to == CheckoutStepPayment
	case CheckoutStepPayment:
		return to == CheckoutStepShipping || to == CheckoutStepSuccess
	default:
		return false
	}
}
