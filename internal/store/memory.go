// internal/store/memory.go
//
// In-memory store for the outcomes of games played during one arcade
// session. Results live only for the lifetime of the process; nothing is
// persisted across runs.
//
// Characteristics:
//   - Append-only list of Result values in finish order.
//   - Concurrency-safe via RWMutex (the arcade itself is single-threaded,
//     but the store makes no assumptions about its callers).

package store

import (
	"context"
	"sync"
	"time"
)

// Result records one finished game.
type Result struct {
	ID      string    // unique result identifier
	Game    string    // game title, e.g. "Blackjack"
	Summary string    // final message shown to the player
	When    time.Time // when the game finished
}

// Store collects results of finished games.
// Implementations are in-memory only; durable backends are out of scope.
type Store interface {
	// Save appends a finished game's result.
	Save(ctx context.Context, r *Result) error

	// List returns all results in finish order.
	List(ctx context.Context) ([]*Result, error)
}

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex
	results []*Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends the result.
func (m *memory) Save(ctx context.Context, r *Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// List returns a copy of the recorded results.
func (m *memory) List(ctx context.Context) ([]*Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Result, len(m.results))
	copy(out, m.results)
	return out, nil
}
