package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Janitor periodically drops expired sessions from a MemoryStore. Redis
// expires keys on its own and needs no janitor.
type Janitor struct {
	store    *MemoryStore
	interval time.Duration
	log      zerolog.Logger
}

func NewJanitor(store *MemoryStore, interval time.Duration, log zerolog.Logger) *Janitor {
	return &Janitor{store: store, interval: interval, log: log}
}

func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := j.store.Sweep(); removed > 0 {
				j.log.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}
