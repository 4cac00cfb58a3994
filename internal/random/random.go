// Package random provides the pseudo-random sources used to shuffle decks.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync/atomic"
)

// Source is the only randomness the games depend on: a uniform integer in [0, n).
type Source interface {
	Intn(n int) int
}

// New returns a deterministic source for the given seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // shuffling cards, not secrets
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seeder hands out seeds for new games.
type Seeder func() (int64, error)

// FixedSeeder returns a seeder that yields seed, seed+1, seed+2, ... so a
// configured seed still gives every game its own deck order.
func FixedSeeder(seed int64) Seeder {
	var next atomic.Int64
	next.Store(seed)

	return func() (int64, error) {
		return next.Add(1) - 1, nil
	}
}
