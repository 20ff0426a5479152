// Package random provides the randomness source shared across the
// application. The simulator, calculator and wallet simulations all draw
// from one generator, and those draws come from the cron scheduler
// goroutine and HTTP handler goroutines at the same time, so the shared
// generator must be safe for concurrent use. math/rand.Rand is not.
package random

import (
	"math/rand"
	"sync"
)

// Locked is a pseudo-random generator safe for concurrent use. Draws from
// the underlying math/rand generator are serialized with a mutex.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocked creates a Locked generator with the given seed.
func NewLocked(seed int64) *Locked {
	return &Locked{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Intn returns a pseudo-random number in [0, n). It panics if n <= 0,
// matching math/rand.
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
