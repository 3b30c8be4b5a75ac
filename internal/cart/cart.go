// Package cart holds the line items of one visitor's cart and derives its totals.
//
// A Cart is not safe for concurrent use. The session that owns it serializes
// every mutation.
package cart

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line for the product, or appends
// a new line with quantity 1 holding a snapshot of the product.
func (c *Cart) Add(p domain.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, domain.NewCartLine(p))
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (c *Cart) Remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// UpdateQuantity adds delta to the line's quantity with a floor of 1. It never
// removes a line. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity = max(1, c.lines[i].Quantity+delta)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Totals is recomputed from the current lines on every call.
func (c *Cart) Totals() domain.Totals {
	return domain.ComputeTotals(c.lines)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	return slices.Clone(c.lines)
}

// Line returns the line for productID, if any.
func (c *Cart) Line(productID string) (domain.CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return domain.CartLine{}, false
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) index(productID string) int {
	return slices.IndexFunc(c.lines, func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
}

type cartJSON struct {
	Lines []domain.CartLine `json:"lines"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(cartJSON{Lines: lines})
}

// UnmarshalJSON restores a cart, merging lines that share a product id and
// lifting quantities below 1 to 1.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	c.lines = nil
	for _, l := range raw.Lines {
		l.Quantity = max(1, l.Quantity)
		if i := c.index(l.ProductID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return nil
}
