package game

import "github.com/NP-Dat/battle-arena/internal/models"

// MaxEffectiveCrit caps the crit chance a unit can reach, weapon bonuses
// included.
const MaxEffectiveCrit = 0.75

// Weapon holds the upgradeable bonuses carried by a hero. Damage and speed
// bonuses only ever grow; the crit bonus accumulates up to MaxEffectiveCrit.
type Weapon struct {
	DamageBonus int
	CritBonus   float64
	SpeedBonus  int
}

// Unit is a combatant. HP starts at MaxHP, never exceeds it and never
// increases; a unit with 0 HP stays on its team as a corpse for reporting.
// Weapon is set only on heroes.
type Unit struct {
	Name    string
	MaxHP   int
	Attack  int
	Defense int
	Crit    float64
	Speed   int
	IsHero  bool
	Weapon  *Weapon
	HP      int
}

// NewUnit instantiates a combat unit from a catalog template.
func NewUnit(tmpl models.UnitTemplate) *Unit {
	return &Unit{
		Name:    tmpl.Name,
		MaxHP:   tmpl.MaxHP,
		Attack:  tmpl.Attack,
		Defense: tmpl.Defense,
		Crit:    tmpl.Crit,
		Speed:   tmpl.Speed,
		HP:      tmpl.MaxHP,
	}
}

// NewHero instantiates the weapon-bearing hero for one side of a match.
func NewHero(name string, spec models.HeroSpec, weapon *Weapon) *Unit {
	return &Unit{
		Name:    name,
		MaxHP:   spec.MaxHP,
		Attack:  spec.Attack,
		Defense: spec.Defense,
		Crit:    spec.Crit,
		Speed:   spec.Speed,
		IsHero:  true,
		Weapon:  weapon,
		HP:      spec.MaxHP,
	}
}

// IsAlive reports whether the unit can still act and be targeted.
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}

// EffectiveAttack returns the attack stat including the weapon damage bonus
// for heroes.
func (u *Unit) EffectiveAttack() int {
	if u.IsHero && u.Weapon != nil {
		return u.Attack + u.Weapon.DamageBonus
	}
	return u.Attack
}

// EffectiveCrit returns the crit chance including the weapon crit bonus for
// heroes, clamped to MaxEffectiveCrit at the point of combination.
func (u *Unit) EffectiveCrit() float64 {
	if u.IsHero && u.Weapon != nil {
		crit := u.Crit + u.Weapon.CritBonus
		if crit > MaxEffectiveCrit {
			return MaxEffectiveCrit
		}
		return crit
	}
	return u.Crit
}

// EffectiveSpeed returns the speed stat including the weapon speed bonus for
// heroes.
func (u *Unit) EffectiveSpeed() int {
	if u.IsHero && u.Weapon != nil {
		return u.Speed + u.Weapon.SpeedBonus
	}
	return u.Speed
}

// TakeHit applies rawDamage mitigated by the unit's defense and returns the
// amount actually dealt. Mitigated damage is floored at 1, so even a unit
// whose defense exceeds the raw damage always loses at least 1 HP. HP never
// drops below 0. Hitting a unit that is already dead is a no-op returning 0.
func (u *Unit) TakeHit(rawDamage int) int {
	if !u.IsAlive() {
		return 0
	}
	mitigated := rawDamage - u.Defense
	if mitigated < 1 {
		mitigated = 1
	}
	u.HP -= mitigated
	if u.HP < 0 {
		u.HP = 0
	}
	return mitigated
}
