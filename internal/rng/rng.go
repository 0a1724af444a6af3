// internal/rng/rng.go
//
// Randomness provider for the arcade.
// Responsibilities:
//   - Define the Source capability the games draw from (uniform ints,
//     in-place shuffles) so tests can substitute deterministic sources.
//   - Seeded construction: the whole session is reproducible from one
//     int64 seed (word pick, opponent gesture, deck order).
//   - Crypto-quality seed generation for normal play.

package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the randomness capability used by the games.
// *math/rand.Rand satisfies it; tests use fixed implementations to force
// specific outcomes.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// New returns a Source seeded with seed. Two Sources with equal seeds
// produce identical draw sequences.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
