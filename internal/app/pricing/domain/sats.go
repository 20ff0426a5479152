package domain

import (
	"fmt"
	"math"
)

// Satoshis is a monetary amount in the smallest currency unit.
// All stored prices and wallet balances are integer satoshis; fractional
// arithmetic only happens transiently inside pricing calculations.
type Satoshis int64

// Int64 returns the raw satoshi count.
func (s Satoshis) Int64() int64 {
	return int64(s)
}

// Float64 returns an approximate float representation (for display and
// percentage math, not for storage).
func (s Satoshis) Float64() float64 {
	return float64(s)
}

// IsPositive returns true if the amount is greater than zero.
func (s Satoshis) IsPositive() bool {
	return s > 0
}

// IsNegative returns true if the amount is less than zero.
func (s Satoshis) IsNegative() bool {
	return s < 0
}

// ApplyChange applies a fractional change and returns the result, rounding
// the delta to the nearest satoshi. ApplyChange(-0.05) on 10000 yields 9500.
func (s Satoshis) ApplyChange(fraction float64) Satoshis {
	delta := math.Round(float64(s) * fraction)
	return s + Satoshis(delta)
}

// MulFloor multiplies by a factor and floors to whole satoshis.
func (s Satoshis) MulFloor(factor float64) Satoshis {
	return Satoshis(math.Floor(float64(s) * factor))
}

// HalfFloor returns floor(s * 0.5), the single-cycle price floor.
func (s Satoshis) HalfFloor() Satoshis {
	return s.MulFloor(0.5)
}

// Max returns the larger of the two amounts.
func (s Satoshis) Max(other Satoshis) Satoshis {
	if s > other {
		return s
	}
	return other
}

// BTC formats the amount as a fixed-point BTC string (1 BTC = 1e8 sats).
func (s Satoshis) BTC() string {
	return fmt.Sprintf("%.8f", float64(s)/float64(SatoshiRate))
}

// String returns a human-readable representation.
func (s Satoshis) String() string {
	return fmt.Sprintf("%d sats", int64(s))
}
