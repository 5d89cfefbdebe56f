package models

import "fmt"

// UpgradeKind identifies which weapon bonus an upgrade modifies.
type UpgradeKind string

const (
	UpgradeDamage UpgradeKind = "damage"
	UpgradeCrit   UpgradeKind = "crit"
	UpgradeSpeed  UpgradeKind = "speed"
)

// ArenaConfig contains every tunable the engine consumes: economy constants,
// the roster cap, the hero template and the purchase catalogs. It is loaded
// once at startup and passed into matches read-only.
type ArenaConfig struct {
	Economy  EconomyConfig  `yaml:"economy"`
	MaxUnits int            `yaml:"max_units"`
	Hero     HeroSpec       `yaml:"hero"`
	Units    []UnitTemplate `yaml:"units"`
	Upgrades []UpgradeSpec  `yaml:"upgrades"`
}

// EconomyConfig defines the gold flow for a match.
type EconomyConfig struct {
	StartingGold int `yaml:"starting_gold"`
	RoundIncome  int `yaml:"round_income"`
	IncomeBonus  int `yaml:"income_bonus"`
}

// HeroSpec defines the base stats of the weapon-bearing hero every team
// starts with. The hero's name is supplied per match.
type HeroSpec struct {
	MaxHP   int     `yaml:"max_hp"`
	Attack  int     `yaml:"attack"`
	Defense int     `yaml:"defense"`
	Crit    float64 `yaml:"crit"`
	Speed   int     `yaml:"speed"`
}

// UnitTemplate defines a purchasable unit type. Crit is a probability in the
// range 0-1.
type UnitTemplate struct {
	Name    string  `yaml:"name"`
	Cost    int     `yaml:"cost"`
	MaxHP   int     `yaml:"max_hp"`
	Attack  int     `yaml:"attack"`
	Defense int     `yaml:"defense"`
	Crit    float64 `yaml:"crit"`
	Speed   int     `yaml:"speed"`
}

// UpgradeSpec defines a purchasable weapon upgrade. Value is the magnitude
// applied to the weapon bonus named by Kind; for damage and speed upgrades it
// is truncated to an integer.
type UpgradeSpec struct {
	Kind  UpgradeKind `yaml:"kind"`
	Label string      `yaml:"label"`
	Cost  int         `yaml:"cost"`
	Value float64     `yaml:"value"`
}

// Validate checks the loaded configuration for values the engine cannot run
// with.
func (c *ArenaConfig) Validate() error {
	if c.Economy.StartingGold < 0 {
		return fmt.Errorf("economy: starting gold must not be negative, got %d", c.Economy.StartingGold)
	}
	if c.Economy.RoundIncome < 0 || c.Economy.IncomeBonus < 0 {
		return fmt.Errorf("economy: round income and bonus must not be negative")
	}
	if c.MaxUnits < 1 {
		return fmt.Errorf("max_units must be at least 1, got %d", c.MaxUnits)
	}
	if c.Hero.MaxHP <= 0 {
		return fmt.Errorf("hero: max_hp must be positive, got %d", c.Hero.MaxHP)
	}
	if len(c.Units) == 0 {
		return fmt.Errorf("unit catalog is empty")
	}
	for i, u := range c.Units {
		if u.Name == "" {
			return fmt.Errorf("unit %d: name is required", i)
		}
		if u.MaxHP <= 0 {
			return fmt.Errorf("unit %q: max_hp must be positive, got %d", u.Name, u.MaxHP)
		}
		if u.Cost < 0 {
			return fmt.Errorf("unit %q: cost must not be negative, got %d", u.Name, u.Cost)
		}
		if u.Crit < 0 || u.Crit > 1 {
			return fmt.Errorf("unit %q: crit must be in [0,1], got %v", u.Name, u.Crit)
		}
	}
	for i, up := range c.Upgrades {
		switch up.Kind {
		case UpgradeDamage, UpgradeCrit, UpgradeSpeed:
		default:
			return fmt.Errorf("upgrade %d: unknown kind %q", i, up.Kind)
		}
		if up.Cost < 0 {
			return fmt.Errorf("upgrade %q: cost must not be negative, got %d", up.Label, up.Cost)
		}
	}
	return nil
}
