package game

import (
	"testing"

	"github.com/NP-Dat/battle-arena/internal/models"
)

func TestSpend(t *testing.T) {
	balance, err := Spend(20, 6)
	if err != nil {
		t.Fatalf("Spend(20, 6) failed: %v", err)
	}
	if balance != 14 {
		t.Errorf("balance = %d, want 14", balance)
	}

	// Exact balance is spendable down to zero.
	balance, err = Spend(14, 14)
	if err != nil {
		t.Fatalf("Spend(14, 14) failed: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestSpendInsufficientFundsLeavesBalance(t *testing.T) {
	balance, err := Spend(21, 30)
	if err != ErrInsufficientFunds {
		t.Fatalf("Spend(21, 30) = %v, want ErrInsufficientFunds", err)
	}
	if balance != 21 {
		t.Errorf("balance = %d after rejected spend, want 21", balance)
	}
}

func TestCanAfford(t *testing.T) {
	if !CanAfford(5, 5) {
		t.Error("exact balance reported unaffordable")
	}
	if CanAfford(5, 6) {
		t.Error("cost above balance reported affordable")
	}
	if !CanAfford(5, 0) {
		t.Error("free item reported unaffordable")
	}
}

func TestRoundIncome(t *testing.T) {
	econ := models.EconomyConfig{StartingGold: 20, RoundIncome: 5, IncomeBonus: 2}
	if got := RoundIncome(econ); got != 7 {
		t.Errorf("RoundIncome = %d, want 7", got)
	}
}

// A balance followed through one income grant and one purchase, the way a
// match applies them.
func TestGoldFlowAcrossARound(t *testing.T) {
	econ := models.EconomyConfig{StartingGold: 20, RoundIncome: 5, IncomeBonus: 2}

	gold := econ.StartingGold + RoundIncome(econ)
	if gold != 27 {
		t.Fatalf("gold after income = %d, want 27", gold)
	}

	gold, err := Spend(gold, 6)
	if err != nil {
		t.Fatalf("Spend failed: %v", err)
	}
	if gold != 21 {
		t.Errorf("gold after purchase = %d, want 21", gold)
	}
}
