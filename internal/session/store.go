package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Chahethsen12/MobiTech-Elite/internal/cart"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists sessions between requests. Implementations hand out fresh
// copies so callers never share a *Session.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

func encode(s *Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session failed: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	if s.Cart == nil {
		s.Cart = cart.New()
	}
	return &s, nil
}
