package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Manager is the single owner of session state. Update runs at most one
// mutation per session at a time; View reads without taking the session lock.
type Manager struct {
	store Store
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock // sessionID -> writer lock, only while in use

	sfg singleflight.Group // collapses concurrent reads of the same session
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
		locks: make(map[string]*sessionLock),
	}
}

func (m *Manager) Create(ctx context.Context) (*Session, error) {
	s := newSession(uuid.NewString(), m.now())
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s, nil
}

// View returns the stored session. The result may be shared with concurrent
// callers and must be treated as read-only.
func (m *Manager) View(ctx context.Context, id string) (*Session, error) {
	v, err, _ := m.sfg.Do(id, func() (any, error) {
		return m.store.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Update loads the session, applies fn and saves the result. When fn returns
// an error nothing is saved and the stored session is unchanged.
func (m *Manager) Update(ctx context.Context, id string, fn func(s *Session) error) (*Session, error) {
	m.lock(id)
	defer m.unlock(id)

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(s); err != nil {
		return nil, err
	}

	s.UpdatedAt = m.now()
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s, nil
}

func (m *Manager) Destroy(ctx context.Context, id string) error {
	m.lock(id)
	defer m.unlock(id)

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// sessionLock counts the callers holding or waiting for it, so the entry can
// be dropped once the last one leaves.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (m *Manager) lock(id string) {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sessionLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
}

func (m *Manager) unlock(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.locks[id]
	l.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, id)
	}
}
