package domain

import "time"

// FaucetAmount is the fixed simulated faucet payout, 0.01 BTC in satoshis.
const FaucetAmount int64 = 1_000_000

// Transaction directions shown in the wallet history.
const (
	DirectionReceived = "received"
	DirectionSent     = "sent"
)

// WalletTransaction is one entry in the simulated on-chain history shown
// alongside the ledgered storefront transactions.
type WalletTransaction struct {
	TxID          string    `json:"txid"`
	Type          string    `json:"type"`
	AmountSats    int64     `json:"amount"` // negative for outgoing
	Confirmations int       `json:"confirmations"`
	Time          time.Time `json:"time"`
	OtherAddress  string    `json:"otherAddress"`
}

// VerificationResult is the simulated confirmation status of a transaction.
type VerificationResult struct {
	Confirmed     bool  `json:"confirmed"`
	Confirmations int   `json:"confirmations"`
	BlockHeight   int64 `json:"block_height"`
	Time          int64 `json:"time"`
}

// AddressBalance is the simulated balance report for an arbitrary address.
type AddressBalance struct {
	Address     string `json:"address"`
	BalanceSats int64  `json:"balance"`
	TxCount     int    `json:"txCount"`
}

// MockTransactions generates a plausible recent history for an address:
// amounts between 10k and 1M sats, mixed directions, spread over the
// preceding days.
func MockTransactions(rng Rand, now time.Time, count int) []WalletTransaction {
	transactions := make([]WalletTransaction, 0, count)

	for i := 0; i < count; i++ {
		incoming := rng.Float64() > 0.5
		amount := int64(rng.Intn(1_000_000) + 10_000)
		if !incoming {
			amount = -amount
		}

		direction := DirectionSent
		if incoming {
			direction = DirectionReceived
		}

		age := time.Duration(float64(i) * 24 * float64(time.Hour) * rng.Float64())

		transactions = append(transactions, WalletTransaction{
			TxID:          NewTxHash(rng),
			Type:          direction,
			AmountSats:    amount,
			Confirmations: rng.Intn(100) + 1,
			Time:          now.Add(-age),
			OtherAddress:  NewTestnetAddress(rng),
		})
	}

	return transactions
}

// SimulateVerification fabricates a confirmation status for a transaction
// this service has no record of, mimicking a blockchain API lookup.
// Roughly 70% of lookups come back confirmed.
func SimulateVerification(rng Rand, now time.Time) VerificationResult {
	return VerificationResult{
		Confirmed:     rng.Float64() > 0.3,
		Confirmations: rng.Intn(6),
		BlockHeight:   estimateBlockHeight(now),
		Time:          now.Unix() - int64(rng.Intn(3600)),
	}
}

// VerifyLedgered derives a confirmation status from a ledgered transaction.
// Confirmed rows report the standard six confirmations.
func VerifyLedgered(confirmed bool, createdAt time.Time, rng Rand, now time.Time) VerificationResult {
	confirmations := 6
	if !confirmed {
		confirmations = rng.Intn(3)
	}

	return VerificationResult{
		Confirmed:     confirmed,
		Confirmations: confirmations,
		BlockHeight:   estimateBlockHeight(now),
		Time:          createdAt.Unix(),
	}
}

// SimulateAddressBalance fabricates a balance report for an address.
func SimulateAddressBalance(address string, rng Rand) AddressBalance {
	return AddressBalance{
		Address:     address,
		BalanceSats: int64(rng.Intn(10_000_000)),
		TxCount:     rng.Intn(20),
	}
}

// estimateBlockHeight approximates testnet height from ten-minute blocks.
func estimateBlockHeight(now time.Time) int64 {
	return now.Unix() / 600
}
