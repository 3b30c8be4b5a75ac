package service

import (
	"github.com/Chahethsen12/MobiTech-Elite/internal/cart"
	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
	"github.com/Chahethsen12/MobiTech-Elite/internal/session"
)

type CartView struct {
	Lines        []domain.CartLine `json:"lines"`
	Count        int               `json:"count"`
	Totals       domain.Totals     `json:"totals"`
	FreeShipping bool              `json:"free_shipping"`
}

func newCartView(c *cart.Cart) CartView {
	totals := c.Totals()
	lines := c.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartView{
		Lines:        lines,
		Count:        c.Count(),
		Totals:       totals,
		FreeShipping: totals.FreeShipping(),
	}
}

// CheckoutView is what the wizard renders. Payment details are never part of it.
type CheckoutView struct {
	CanCheckout  bool                      `json:"can_checkout"`
	Step         domain.CheckoutStep       `json:"step,omitempty"`
	Shipping     *domain.ShippingForm      `json:"shipping,omitempty"`
	Confirmation *domain.OrderConfirmation `json:"confirmation,omitempty"`
	Cart         CartView                  `json:"cart"`
}

func newCheckoutView(s *session.Session) CheckoutView {
	v := CheckoutView{
		CanCheckout: s.Checkout.CanCheckout(s.Cart),
		Cart:        newCartView(s.Cart),
	}
	if s.Checkout != nil {
		shipping := s.Checkout.Shipping
		v.Step = s.Checkout.Step
		v.Shipping = &shipping
		v.Confirmation = s.Checkout.Confirmation
	}
	return v
}

// ProductView adds the derived low-stock flag for the admin dashboard.
type ProductView struct {
	domain.Product
	LowStock bool `json:"low_stock"`
}

func newProductView(p domain.Product) ProductView {
	return ProductView{Product: p, LowStock: p.IsLowStock()}
}

type InventoryReport struct {
	Products      []ProductView `json:"products"`
	LowStockCount int           `json:"low_stock_count"`
	TotalUnits    int           `json:"total_units"`
}
