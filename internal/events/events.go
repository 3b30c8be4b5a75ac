// Package events announces completed purchases to the rest of the system.
package events

import (
	"context"
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

const EventTypeOrderPlaced = "OrderPlaced"

// OrderPlaced is emitted once per checkout that reaches success.
type OrderPlaced struct {
	OrderID       string            `json:"order_id"`
	SessionID     string            `json:"session_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Lines         []domain.CartLine `json:"lines"`
	Totals        domain.Totals     `json:"totals"`
	Currency      string            `json:"currency"`
	PlacedAt      time.Time         `json:"placed_at"`
}

func NewOrderPlaced(sessionID string, c *domain.OrderConfirmation) OrderPlaced {
	return OrderPlaced{
		OrderID:       c.OrderID,
		SessionID:     sessionID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		Lines:         c.Lines,
		Totals:        c.Totals,
		Currency:      c.Totals.Total.Currency.String(),
		PlacedAt:      c.PlacedAt,
	}
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlaced) error
	Close() error
}
