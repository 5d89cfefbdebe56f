package models

import "testing"

func validConfig() ArenaConfig {
	return ArenaConfig{
		Economy:  EconomyConfig{StartingGold: 20, RoundIncome: 5, IncomeBonus: 2},
		MaxUnits: 6,
		Hero:     HeroSpec{MaxHP: 30, Attack: 8, Defense: 2, Crit: 0.10, Speed: 6},
		Units: []UnitTemplate{
			{Name: "Swordsman", Cost: 4, MaxHP: 24, Attack: 7, Defense: 2, Crit: 0.05, Speed: 5},
		},
		Upgrades: []UpgradeSpec{
			{Kind: UpgradeDamage, Label: "+2 Weapon Damage", Cost: 6, Value: 2},
		},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate rejected a valid config: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArenaConfig)
	}{
		{"negative starting gold", func(c *ArenaConfig) { c.Economy.StartingGold = -1 }},
		{"negative income", func(c *ArenaConfig) { c.Economy.RoundIncome = -1 }},
		{"zero roster cap", func(c *ArenaConfig) { c.MaxUnits = 0 }},
		{"hero without health", func(c *ArenaConfig) { c.Hero.MaxHP = 0 }},
		{"empty unit catalog", func(c *ArenaConfig) { c.Units = nil }},
		{"unnamed unit", func(c *ArenaConfig) { c.Units[0].Name = "" }},
		{"unit without health", func(c *ArenaConfig) { c.Units[0].MaxHP = 0 }},
		{"negative unit cost", func(c *ArenaConfig) { c.Units[0].Cost = -1 }},
		{"crit above 1", func(c *ArenaConfig) { c.Units[0].Crit = 1.5 }},
		{"unknown upgrade kind", func(c *ArenaConfig) { c.Upgrades[0].Kind = "lifesteal" }},
		{"negative upgrade cost", func(c *ArenaConfig) { c.Upgrades[0].Cost = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}
