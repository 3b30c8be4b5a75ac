package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal transition of checkout step")
	ErrNotStarted        = errors.New("checkout has not been started")
)

// ValidationError lists the required form fields that were left blank. The
// checkout step does not change when it is returned.
type ValidationError struct {
	Step   domain.CheckoutStep
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s form is missing required fields: %s", e.Step, strings.Join(e.Fields, ", "))
}
