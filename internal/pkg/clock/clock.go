// Package clock abstracts time so pricing cycles and wallet simulations
// can be replayed at a fixed instant under test.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// NewRealClock returns the production Clock.
func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced Clock for tests. It stays pinned to one
// instant until Advance is called, so history rows written across simulated
// cycles carry ordered, predictable timestamps.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock pinned to startTime.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
