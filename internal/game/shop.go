package game

import "github.com/NP-Dat/battle-arena/internal/models"

// Agent supplies the purchase decisions for one side of a match. The engine
// calls BuildRoster once before the first round, PickUpgrades after every
// non-terminal round and ReviewRound after every round. Implementations may
// be a remote human client or an automated policy; the engine cannot tell
// the difference.
type Agent interface {
	BuildRoster(shop *RosterShop) error
	PickUpgrades(shop *UpgradeShop) error
	ReviewRound(report RoundReport)
}

// RosterShop is the validated purchase surface for the one-time pre-match
// unit shop. Every Buy either fully applies (unit added, gold deducted) or
// fails without touching anything.
type RosterShop struct {
	gold    int
	team    *Team
	catalog []models.UnitTemplate
}

func newRosterShop(gold int, team *Team, catalog []models.UnitTemplate) *RosterShop {
	return &RosterShop{gold: gold, team: team, catalog: catalog}
}

// Gold returns the remaining balance.
func (s *RosterShop) Gold() int { return s.gold }

// Catalog returns the purchasable unit templates.
func (s *RosterShop) Catalog() []models.UnitTemplate { return s.catalog }

// TeamSize returns the current roster size.
func (s *RosterShop) TeamSize() int { return len(s.team.Units) }

// Full reports whether the roster has reached its cap.
func (s *RosterShop) Full() bool { return s.team.Full() }

// Buy purchases the catalog unit at index and adds it to the team. It fails
// with ErrUnknownItem, ErrRosterFull or ErrInsufficientFunds, all checked
// before any mutation.
func (s *RosterShop) Buy(index int) error {
	if index < 0 || index >= len(s.catalog) {
		return ErrUnknownItem
	}
	if s.team.Full() {
		return ErrRosterFull
	}
	tmpl := s.catalog[index]
	newGold, err := Spend(s.gold, tmpl.Cost)
	if err != nil {
		return err
	}
	if err := s.team.AddUnit(NewUnit(tmpl)); err != nil {
		return err
	}
	s.gold = newGold
	return nil
}

// UpgradeShop is the validated purchase surface for the between-round weapon
// shop. Purchases mutate the hero's weapon additively; the crit bonus
// accumulates at most to MaxEffectiveCrit.
type UpgradeShop struct {
	gold    int
	weapon  *Weapon
	catalog []models.UpgradeSpec
}

func newUpgradeShop(gold int, weapon *Weapon, catalog []models.UpgradeSpec) *UpgradeShop {
	return &UpgradeShop{gold: gold, weapon: weapon, catalog: catalog}
}

// Gold returns the remaining balance.
func (s *UpgradeShop) Gold() int { return s.gold }

// Catalog returns the purchasable upgrades.
func (s *UpgradeShop) Catalog() []models.UpgradeSpec { return s.catalog }

// Weapon returns the current weapon bonuses, for display.
func (s *UpgradeShop) Weapon() Weapon { return *s.weapon }

// Buy purchases the upgrade at index and applies it to the weapon. It fails
// with ErrUnknownItem or ErrInsufficientFunds before any mutation.
func (s *UpgradeShop) Buy(index int) error {
	if index < 0 || index >= len(s.catalog) {
		return ErrUnknownItem
	}
	spec := s.catalog[index]
	newGold, err := Spend(s.gold, spec.Cost)
	if err != nil {
		return err
	}
	applyUpgrade(s.weapon, spec)
	s.gold = newGold
	return nil
}

// applyUpgrade mutates the weapon bonus named by the spec's kind. The crit
// bonus is capped here so it cannot grow without bound; the effective-crit
// clamp on the unit stays authoritative either way.
func applyUpgrade(w *Weapon, spec models.UpgradeSpec) {
	switch spec.Kind {
	case models.UpgradeDamage:
		w.DamageBonus += int(spec.Value)
	case models.UpgradeCrit:
		bonus := w.CritBonus + spec.Value
		if bonus > MaxEffectiveCrit {
			bonus = MaxEffectiveCrit
		}
		w.CritBonus = bonus
	case models.UpgradeSpeed:
		w.SpeedBonus += int(spec.Value)
	}
}
