package events

import (
	"context"

	"github.com/rs/zerolog"
)

// LogPublisher writes events to the log. It is used when no broker is configured.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishOrderPlaced(_ context.Context, e OrderPlaced) error {
	p.log.Info().
		Str("event_type", EventTypeOrderPlaced).
		Str("order_id", e.OrderID).
		Str("session_id", e.SessionID).
		Int("lines", len(e.Lines)).
		Stringer("total", e.Totals.Total).
		Time("placed_at", e.PlacedAt).
		Msg("order placed")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
