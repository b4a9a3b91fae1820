package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/pkg/clock"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/google/uuid"
)

type entry struct {
	mu      sync.Mutex
	draft   *reservation.Draft
	removed bool
}

// DraftStore keeps drafts in memory. Each draft has its own lock so requests
// for one form are serialized while different forms proceed in parallel.
type DraftStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	clock   clock.Clock
	idleTTL time.Duration
}

var _ shared.DraftStore = (*DraftStore)(nil)

func NewDraftStore(clk clock.Clock, idleTTL time.Duration) *DraftStore {
	return &DraftStore{
		entries: make(map[uuid.UUID]*entry),
		clock:   clk,
		idleTTL: idleTTL,
	}
}

func (s *DraftStore) Put(d *reservation.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[d.ID()] = &entry{draft: d}
}

func (s *DraftStore) With(id uuid.UUID, fn func(d *reservation.Draft) error) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return shared.ErrDraftNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return shared.ErrDraftNotFound
	}

	err := fn(e.draft)
	e.draft.Touch(s.clock.Now())
	return err
}

func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops drafts idle for longer than the TTL. Drafts locked by an
// in-flight request are active and skipped.
func (s *DraftStore) Sweep() int {
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.draft.IsIdleSince(cutoff) {
			e.removed = true
			if n := e.draft.Notifier(); n != nil {
				n.Dismiss()
			}
			delete(s.entries, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Run sweeps every interval until ctx is done
func (s *DraftStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Info("expired drafts swept", "count", n, "remaining", s.Len())
			}
		}
	}
}
