package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"oleander_app_echo/internal/app"
)

// ErrSessionNotFound is returned when a view instance is unknown or expired.
var ErrSessionNotFound = errors.New("view session not found")

// SessionStore keeps the UI state of each open page, keyed by instance id.
type SessionStore interface {
	Load(ctx context.Context, id string) (app.State, error)
	Save(ctx context.Context, id string, state app.State) error
	Delete(ctx context.Context, id string) error
}

// Sweeper is implemented by stores that need expired entries removed
// explicitly.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type memoryEntry struct {
	state     app.State
	expiresAt time.Time
}

// MemoryStore is an in-process SessionStore. Entries expire after ttl of
// inactivity.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load returns a copy of the stored state.
func (s *MemoryStore) Load(ctx context.Context, id string) (app.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || !s.now().Before(entry.expiresAt) {
		return app.State{}, ErrSessionNotFound
	}
	return copyState(entry.state), nil
}

// Save stores state and pushes its expiry forward.
func (s *MemoryStore) Save(ctx context.Context, id string, state app.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = memoryEntry{state: copyState(state), expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Delete removes id. Deleting an unknown id is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func copyState(s app.State) app.State {
	s.Errors = s.Errors.Clone()
	if s.Submitted != nil {
		payload := *s.Submitted
		s.Submitted = &payload
	}
	return s
}
