package domain

import "strings"

// Rand is the subset of math/rand.Rand the wallet simulation draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Testnet bech32 prefix. Addresses are simulated, not derived from keys;
// the storefront only needs them to look right and stay unique enough.
const (
	addressPrefix = "tb1q"
	addressLength = 38
	txHashLength  = 64

	hexDigits = "0123456789abcdef"
)

// NewTestnetAddress generates a simulated Bitcoin testnet address.
func NewTestnetAddress(rng Rand) string {
	var b strings.Builder
	b.Grow(len(addressPrefix) + addressLength)
	b.WriteString(addressPrefix)
	for i := 0; i < addressLength; i++ {
		b.WriteByte(hexDigits[rng.Intn(len(hexDigits))])
	}
	return b.String()
}

// NewTxHash generates a simulated 64-character transaction hash.
func NewTxHash(rng Rand) string {
	var b strings.Builder
	b.Grow(txHashLength)
	for i := 0; i < txHashLength; i++ {
		b.WriteByte(hexDigits[rng.Intn(len(hexDigits))])
	}
	return b.String()
}
