package game

import (
	"math/rand"
	"sort"
)

// critMultiplier scales attack damage on a critical hit. The product is
// truncated toward zero before mitigation.
const critMultiplier = 1.8

// RoundOutcome classifies the state of a match after a round. Exactly one
// outcome applies per round.
type RoundOutcome string

const (
	OutcomeContinue  RoundOutcome = "continue"
	OutcomePlayerWin RoundOutcome = "player"
	OutcomeEnemyWin  RoundOutcome = "enemy"
	OutcomeDraw      RoundOutcome = "draw"
)

// Terminal reports whether the outcome ends the match.
func (o RoundOutcome) Terminal() bool {
	return o != OutcomeContinue
}

// AttackRecord describes a single resolved attack, for reporting only.
type AttackRecord struct {
	Attacker string
	Target   string
	Damage   int
	Crit     bool
}

// UnitStatus is a unit's health snapshot after a round.
type UnitStatus struct {
	Name  string
	HP    int
	MaxHP int
	Alive bool
}

// RoundReport is what the engine yields to collaborators after each round.
// It is content only; rendering is up to the receiver.
type RoundReport struct {
	Round       int
	Attacks     []AttackRecord
	Outcome     RoundOutcome
	PlayerUnits []UnitStatus
	EnemyUnits  []UnitStatus
}

// turn pairs an attacker with its side for the duration of one round.
type turn struct {
	unit       *Unit
	playerSide bool
}

// ResolveRound runs one full combat round between the two teams and returns
// the attack log plus the resulting outcome.
//
// The turn order is a snapshot: alive player units followed by alive enemy
// units, stable-sorted descending by effective speed, so speed ties resolve
// in favor of the player side and then roster order. Units that die during
// the round keep their slot in the order but are skipped when their turn
// comes. Targets are drawn uniformly from the opposing team's alive units as
// of the attack, not the snapshot. When an attacker finds no alive opponents
// the round ends early.
//
// rng is consulted twice per attack, target pick first and crit roll second;
// a fixed seed therefore replays a round exactly.
func ResolveRound(player, enemy *Team, rng *rand.Rand) ([]AttackRecord, RoundOutcome) {
	order := make([]turn, 0, len(player.Units)+len(enemy.Units))
	for _, u := range player.AliveUnits() {
		order = append(order, turn{unit: u, playerSide: true})
	}
	for _, u := range enemy.AliveUnits() {
		order = append(order, turn{unit: u})
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].unit.EffectiveSpeed() > order[j].unit.EffectiveSpeed()
	})

	var attacks []AttackRecord
	for _, tn := range order {
		attacker := tn.unit
		if !attacker.IsAlive() {
			continue
		}

		opposing := enemy
		if !tn.playerSide {
			opposing = player
		}
		targets := opposing.AliveUnits()
		if len(targets) == 0 {
			break
		}
		target := targets[rng.Intn(len(targets))]

		damage := attacker.EffectiveAttack()
		crit := rng.Float64() < attacker.EffectiveCrit()
		if crit {
			damage = int(float64(damage) * critMultiplier)
		}
		dealt := target.TakeHit(damage)

		attacks = append(attacks, AttackRecord{
			Attacker: attacker.Name,
			Target:   target.Name,
			Damage:   dealt,
			Crit:     crit,
		})
	}

	return attacks, classify(player, enemy)
}

// classify maps the two teams' alive counts to a round outcome.
func classify(player, enemy *Team) RoundOutcome {
	playerAlive := len(player.AliveUnits())
	enemyAlive := len(enemy.AliveUnits())
	switch {
	case playerAlive == 0 && enemyAlive == 0:
		return OutcomeDraw
	case enemyAlive == 0:
		return OutcomePlayerWin
	case playerAlive == 0:
		return OutcomeEnemyWin
	default:
		return OutcomeContinue
	}
}

// teamStatus snapshots a team's units for a round report.
func teamStatus(t *Team) []UnitStatus {
	status := make([]UnitStatus, 0, len(t.Units))
	for _, u := range t.Units {
		status = append(status, UnitStatus{
			Name:  u.Name,
			HP:    u.HP,
			MaxHP: u.MaxHP,
			Alive: u.IsAlive(),
		})
	}
	return status
}
