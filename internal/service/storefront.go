// Package service ties the catalog, sessions, identity, events and the
// assistant together for the transport layer.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/assistant"
	"github.com/Chahethsen12/MobiTech-Elite/internal/auth"
	"github.com/Chahethsen12/MobiTech-Elite/internal/catalog"
	"github.com/Chahethsen12/MobiTech-Elite/internal/checkout"
	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
	"github.com/Chahethsen12/MobiTech-Elite/internal/events"
	"github.com/Chahethsen12/MobiTech-Elite/internal/session"
	"github.com/rs/zerolog"
)

type Storefront struct {
	catalog   catalog.Store
	sessions  *session.Manager
	auth      *auth.Authenticator
	publisher events.Publisher
	assistant *assistant.Assistant
	log       zerolog.Logger
	now       func() time.Time
}

func NewStorefront(
	store catalog.Store,
	sessions *session.Manager,
	authenticator *auth.Authenticator,
	publisher events.Publisher,
	asst *assistant.Assistant,
	log zerolog.Logger,
) *Storefront {
	return &Storefront{
		catalog:   store,
		sessions:  sessions,
		auth:      authenticator,
		publisher: publisher,
		assistant: asst,
		log:       log,
		now:       time.Now,
	}
}

func (s *Storefront) CreateSession(ctx context.Context) (string, error) {
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

func (s *Storefront) ListProducts(q catalog.Query) ([]domain.Product, error) {
	return s.catalog.List(q)
}

func (s *Storefront) GetProduct(productID string) (domain.Product, error) {
	return s.catalog.Get(productID)
}

// EndSession discards the session with its cart and checkout.
func (s *Storefront) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(ctx, sessionID)
}

func (s *Storefront) GetCart(ctx context.Context, sessionID string) (CartView, error) {
	sess, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	return newCartView(sess.Cart), nil
}

// AddToCart snapshots the product as it is in the catalog right now. Stock
// is not checked.
func (s *Storefront) AddToCart(ctx context.Context, sessionID, productID string) (CartView, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return CartView{}, err
	}

	return s.updateCart(ctx, sessionID, func(sess *session.Session) {
		sess.Cart.Add(product)
		if line, ok := sess.Cart.Line(productID); ok {
			s.log.Debug().
				Str("session_id", sessionID).
				Str("product_id", productID).
				Int("quantity", line.Quantity).
				Msg("added to cart")
		}
	})
}

func (s *Storefront) UpdateCartQuantity(ctx context.Context, sessionID, productID string, delta int) (CartView, error) {
	return s.updateCart(ctx, sessionID, func(sess *session.Session) {
		sess.Cart.UpdateQuantity(productID, delta)
	})
}

func (s *Storefront) RemoveFromCart(ctx context.Context, sessionID, productID string) (CartView, error) {
	return s.updateCart(ctx, sessionID, func(sess *session.Session) {
		sess.Cart.Remove(productID)
	})
}

func (s *Storefront) updateCart(ctx context.Context, sessionID string, fn func(*session.Session)) (CartView, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		fn(sess)
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	return newCartView(sess.Cart), nil
}

func (s *Storefront) GetCheckout(ctx context.Context, sessionID string) (CheckoutView, error) {
	sess, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	return newCheckoutView(sess), nil
}

// BeginCheckout resumes a checkout that is still in progress and otherwise
// starts a new one, replacing a finished session. Either way the cart must
// not be empty.
func (s *Storefront) BeginCheckout(ctx context.Context, sessionID string) (CheckoutView, error) {
	return s.updateCheckout(ctx, sessionID, func(sess *session.Session) error {
		if sess.Checkout != nil && !sess.Checkout.Step.IsTerminal() {
			if !sess.Checkout.CanCheckout(sess.Cart) {
				return checkout.ErrEmptyCart
			}
			return nil
		}

		started, err := checkout.Begin(sess.Cart, sess.User, s.now())
		if err != nil {
			return err
		}
		sess.Checkout = started
		return nil
	})
}

func (s *Storefront) SubmitShipping(ctx context.Context, sessionID string, form domain.ShippingForm) (CheckoutView, error) {
	return s.updateCheckout(ctx, sessionID, func(sess *session.Session) error {
		if sess.Checkout == nil {
			return checkout.ErrNotStarted
		}
		return sess.Checkout.SubmitShipping(form, sess.Cart)
	})
}

func (s *Storefront) BackToShipping(ctx context.Context, sessionID string) (CheckoutView, error) {
	return s.updateCheckout(ctx, sessionID, func(sess *session.Session) error {
		if sess.Checkout == nil {
			return checkout.ErrNotStarted
		}
		return sess.Checkout.Back()
	})
}

// SubmitPayment places the order. The OrderPlaced event goes out after the
// session is saved; a publish failure is logged and the order stands.
func (s *Storefront) SubmitPayment(ctx context.Context, sessionID string, form domain.PaymentForm) (*domain.OrderConfirmation, error) {
	var confirmation *domain.OrderConfirmation
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.Checkout == nil {
			return checkout.ErrNotStarted
		}
		conf, err := sess.Checkout.SubmitPayment(form, sess.Cart, s.now())
		if err != nil {
			return err
		}
		confirmation = conf
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("order_id", confirmation.OrderID).
		Stringer("total", confirmation.Totals.Total).
		Msg("checkout completed")

	event := events.NewOrderPlaced(sessionID, confirmation)
	if err := s.publisher.PublishOrderPlaced(context.WithoutCancel(ctx), event); err != nil {
		s.log.Error().Err(err).Str("order_id", confirmation.OrderID).Msg("failed to publish order event")
	}

	return confirmation, nil
}

// AbandonCheckout discards the checkout. The cart is kept for a later retry.
func (s *Storefront) AbandonCheckout(ctx context.Context, sessionID string) (CheckoutView, error) {
	return s.updateCheckout(ctx, sessionID, func(sess *session.Session) error {
		sess.Checkout = nil
		return nil
	})
}

func (s *Storefront) updateCheckout(ctx context.Context, sessionID string, fn func(*session.Session) error) (CheckoutView, error) {
	sess, err := s.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		return CheckoutView{}, err
	}
	return newCheckoutView(sess), nil
}

func (s *Storefront) Login(ctx context.Context, sessionID, email, password string, asAdmin bool) (*domain.User, error) {
	user, err := s.auth.Login(email, password, asAdmin)
	if err != nil {
		return nil, err
	}
	return s.setUser(ctx, sessionID, user)
}

func (s *Storefront) Register(ctx context.Context, sessionID, name, email, password string) (*domain.User, error) {
	user, err := s.auth.Register(name, email, password)
	if err != nil {
		return nil, err
	}
	return s.setUser(ctx, sessionID, user)
}

// Logout forgets the user. The cart stays with the session.
func (s *Storefront) Logout(ctx context.Context, sessionID string) error {
	_, err := s.setUser(ctx, sessionID, nil)
	return err
}

// UpdateProfile changes the signed-in user's name and email.
func (s *Storefront) UpdateProfile(ctx context.Context, sessionID, name, email string) (*domain.User, error) {
	var updated *domain.User
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		user, err := s.auth.UpdateProfile(sess.User, name, email)
		if err != nil {
			return err
		}
		sess.User = user
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Storefront) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.User, nil
}

func (s *Storefront) setUser(ctx context.Context, sessionID string, user *domain.User) (*domain.User, error) {
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.User = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update session user: %w", err)
	}
	return user, nil
}

func (s *Storefront) RequireAdmin(ctx context.Context, sessionID string) error {
	user, err := s.CurrentUser(ctx, sessionID)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (s *Storefront) Inventory() (InventoryReport, error) {
	products, err := s.catalog.List(catalog.Query{Sort: catalog.SortPriceHigh})
	if err != nil {
		return InventoryReport{}, err
	}

	report := InventoryReport{
		Products:      make([]ProductView, 0, len(products)),
		LowStockCount: len(s.catalog.LowStock()),
	}
	for _, p := range products {
		report.TotalUnits += p.Stock
		report.Products = append(report.Products, newProductView(p))
	}
	return report, nil
}

func (s *Storefront) UpdateStock(productID string, newStock int) (ProductView, error) {
	p, err := s.catalog.UpdateStock(productID, newStock)
	if err != nil {
		return ProductView{}, err
	}
	s.log.Info().Str("product_id", productID).Int("stock", p.Stock).Msg("stock updated")
	return newProductView(p), nil
}

func (s *Storefront) AdjustStock(productID string, delta int) (ProductView, error) {
	p, err := s.catalog.AdjustStock(productID, delta)
	if err != nil {
		return ProductView{}, err
	}
	s.log.Info().Str("product_id", productID).Int("delta", delta).Int("stock", p.Stock).Msg("stock adjusted")
	return newProductView(p), nil
}

// Ask forwards a question to the assistant with the full catalog as context.
// No session lock is held while the assistant runs.
func (s *Storefront) Ask(ctx context.Context, question string) (assistant.Reply, error) {
	products, err := s.catalog.List(catalog.Query{})
	if err != nil {
		return assistant.Reply{}, err
	}
	return s.assistant.Ask(ctx, question, products)
}
