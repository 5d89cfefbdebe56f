package game

import "github.com/NP-Dat/battle-arena/internal/models"

// CanAfford reports whether cost can be paid from balance.
func CanAfford(balance, cost int) bool {
	return cost <= balance
}

// Spend deducts cost from balance and returns the new balance. It fails with
// ErrInsufficientFunds when the cost exceeds the balance; the ledger never
// clamps, callers are expected to check affordability first.
func Spend(balance, cost int) (int, error) {
	if !CanAfford(balance, cost) {
		return balance, ErrInsufficientFunds
	}
	return balance - cost, nil
}

// RoundIncome returns the gold granted to each side at the start of every
// non-terminal economy phase.
func RoundIncome(econ models.EconomyConfig) int {
	return econ.RoundIncome + econ.IncomeBonus
}
