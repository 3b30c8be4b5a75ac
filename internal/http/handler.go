// Package http exposes the storefront as a JSON API.
package http

import (
	"context"

	"github.com/Chahethsen12/MobiTech-Elite/internal/assistant"
	"github.com/Chahethsen12/MobiTech-Elite/internal/catalog"
	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
	"github.com/Chahethsen12/MobiTech-Elite/internal/service"
)

// Storefront is the service surface the handlers depend on.
type Storefront interface {
	CreateSession(ctx context.Context) (string, error)
	EndSession(ctx context.Context, sessionID string) error

	ListProducts(q catalog.Query) ([]domain.Product, error)
	GetProduct(productID string) (domain.Product, error)

	GetCart(ctx context.Context, sessionID string) (service.CartView, error)
	AddToCart(ctx context.Context, sessionID, productID string) (service.CartView, error)
	UpdateCartQuantity(ctx context.Context, sessionID, productID string, delta int) (service.CartView, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (service.CartView, error)

	GetCheckout(ctx context.Context, sessionID string) (service.CheckoutView, error)
	BeginCheckout(ctx context.Context, sessionID string) (service.CheckoutView, error)
	SubmitShipping(ctx context.Context, sessionID string, form domain.ShippingForm) (service.CheckoutView, error)
	BackToShipping(ctx context.Context, sessionID string) (service.CheckoutView, error)
	SubmitPayment(ctx context.Context, sessionID string, form domain.PaymentForm) (*domain.OrderConfirmation, error)
	AbandonCheckout(ctx context.Context, sessionID string) (service.CheckoutView, error)

	Login(ctx context.Context, sessionID, email, password string, asAdmin bool) (*domain.User, error)
	Register(ctx context.Context, sessionID, name, email, password string) (*domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, sessionID, name, email string) (*domain.User, error)
	RequireAdmin(ctx context.Context, sessionID string) error

	Inventory() (service.InventoryReport, error)
	UpdateStock(productID string, newStock int) (service.ProductView, error)
	AdjustStock(productID string, delta int) (service.ProductView, error)

	Ask(ctx context.Context, question string) (assistant.Reply, error)
}

type Handler struct {
	svc Storefront
}

func NewHandler(svc Storefront) *Handler {
	return &Handler{svc: svc}
}
