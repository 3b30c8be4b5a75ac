package checkout

import (
	"fmt"
	"math/rand/v2"
)

const orderIDPrefix = "MTE-"

// NewOrderID returns a display-only order number such as "MTE-482913".
// Uniqueness is not guaranteed.
func NewOrderID() string {
	return fmt.Sprintf("%s%d", orderIDPrefix, rand.IntN(1_000_000))
}
