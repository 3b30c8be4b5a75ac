// Package session owns the per-visitor state: the logged-in user, the cart and
// the checkout in progress.
package session

import (
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/cart"
	"github.com/Chahethsen12/MobiTech-Elite/internal/checkout"
	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

type Session struct {
	ID        string            `json:"id"`
	User      *domain.User      `json:"user,omitempty"`
	Cart      *cart.Cart        `json:"cart"`
	Checkout  *checkout.Session `json:"checkout,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
