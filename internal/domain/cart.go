package domain

import (
	"github.com/shopspring/decimal"
)

var (
	// FreeShippingThreshold is exclusive: a subtotal must exceed it to ship free.
	FreeShippingThreshold = USDFromInt(1000)
	FlatShipping          = USDFromInt(25)
	TaxRate               = decimal.RequireFromString("0.08")
)

// CartLine holds a copy of the product's price, name and image taken when the
// product was first added. Catalog price changes never reach an existing line.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Image     string `json:"image"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
}

func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  1,
	}
}

func (l CartLine) LineTotal() Money {
	return l.Price.Times(l.Quantity)
}

type Totals struct {
	Subtotal Money `json:"subtotal"`
	Shipping Money `json:"shipping"`
	Tax      Money `json:"tax"`
	Total    Money `json:"total"`
}

func (t Totals) FreeShipping() bool {
	return t.Shipping.IsZero()
}

// ComputeTotals derives subtotal, shipping, tax and total from the given lines.
func ComputeTotals(lines []CartLine) Totals {
	subtotal := ZeroUSD()
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	shipping := FlatShipping
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = ZeroUSD()
	}

	tax := subtotal.MulRate(TaxRate).RoundCents()

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
