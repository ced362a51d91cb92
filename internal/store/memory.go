// internal/store/memory.go
//
// In-memory registry of live game sessions for the web adapter.
//
// Characteristics:
//   - Sessions are keyed by Session.ID().
//   - Each session has its own mutex; Update runs the callback under it, so
//     concurrent requests for the same game are applied one at a time.
//   - Idle sessions expire after a TTL (go-cache janitor); every Update
//     refreshes the deadline.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the registry interface for sessions.
type Store interface {
	// Save registers or replaces a session under its ID.
	Save(ctx context.Context, s *game.Session) error

	// Update runs fn with exclusive access to the session with the given ID.
	// fn's error is returned as-is.
	Update(ctx context.Context, id string, fn func(s *game.Session) error) error

	// Count returns the number of live sessions.
	Count() int
}

// entry pairs a session with the lock that serializes access to it.
type entry struct {
	mu sync.Mutex
	s  *game.Session
}

// memory is a go-cache backed Store implementation.
type memory struct {
	c *cache.Cache
}

// NewMemoryStore constructs a Store whose sessions expire after ttl of
// inactivity. ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		return &memory{c: cache.New(cache.NoExpiration, 0)}
	}
	return &memory{c: cache.New(ttl, ttl/2)}
}

// Save adds or replaces the session.
func (m *memory) Save(_ context.Context, s *game.Session) error {
	if s.ID() == "" {
		return errors.New("session not started")
	}
	m.c.SetDefault(s.ID(), &entry{s: s})
	return nil
}

// Update looks up the session and applies fn under its lock.
func (m *memory) Update(_ context.Context, id string, fn func(s *game.Session) error) error {
	v, ok := m.c.Get(id)
	if !ok {
		return ErrNotFound
	}
	e := v.(*entry)
	e.mu.Lock()
	defer e.mu.Unlock()
	m.c.SetDefault(id, e)
	return fn(e.s)
}

// Count reports live (unexpired) sessions.
func (m *memory) Count() int { return m.c.ItemCount() }
