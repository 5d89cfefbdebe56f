package game

import (
	"fmt"
	"math/rand"

	"github.com/NP-Dat/battle-arena/internal/models"
)

// MatchState tracks where a match is in its lifecycle.
type MatchState string

const (
	StatePreMatch   MatchState = "PRE_MATCH"
	StateInProgress MatchState = "IN_PROGRESS"
	StateFinished   MatchState = "FINISHED"
)

// Match owns all state for one arena match: both teams, both gold balances,
// both hero weapons and the shared random source. It is single-threaded; Run
// drives rounds and collaborator calls synchronously until a terminal
// outcome.
type Match struct {
	cfg *models.ArenaConfig

	Player *Team
	Enemy  *Team

	PlayerWeapon *Weapon
	EnemyWeapon  *Weapon

	PlayerGold int
	EnemyGold  int

	round   int
	state   MatchState
	outcome RoundOutcome
	rng     *rand.Rand
}

// NewMatch builds a match in the PreMatch state. Each side starts with a
// hero named after its owner, a zeroed weapon and the configured starting
// gold. It fails with ErrNoRandomSource when rng is nil: the engine's only
// non-determinism is the injected source, and match replays depend on it.
func NewMatch(cfg *models.ArenaConfig, playerName, enemyName string, rng *rand.Rand) (*Match, error) {
	if rng == nil {
		return nil, ErrNoRandomSource
	}

	playerWeapon := &Weapon{}
	enemyWeapon := &Weapon{}

	player := NewTeam(playerName, cfg.MaxUnits)
	enemy := NewTeam(enemyName, cfg.MaxUnits)
	if err := player.AddUnit(NewHero(playerName, cfg.Hero, playerWeapon)); err != nil {
		return nil, fmt.Errorf("add player hero: %w", err)
	}
	if err := enemy.AddUnit(NewHero(enemyName, cfg.Hero, enemyWeapon)); err != nil {
		return nil, fmt.Errorf("add enemy hero: %w", err)
	}

	return &Match{
		cfg:          cfg,
		Player:       player,
		Enemy:        enemy,
		PlayerWeapon: playerWeapon,
		EnemyWeapon:  enemyWeapon,
		PlayerGold:   cfg.Economy.StartingGold,
		EnemyGold:    cfg.Economy.StartingGold,
		round:        1,
		state:        StatePreMatch,
		rng:          rng,
	}, nil
}

// State returns the current lifecycle state.
func (m *Match) State() MatchState { return m.state }

// Round returns the current round number, starting at 1.
func (m *Match) Round() int { return m.round }

// Outcome returns the terminal outcome, or OutcomeContinue while the match
// is still running.
func (m *Match) Outcome() RoundOutcome {
	if m.state != StateFinished {
		return OutcomeContinue
	}
	return m.outcome
}

// Run drives the match to completion. It runs both sides' one-time roster
// shops, then loops: resolve a round, report it to both agents, and on a
// non-terminal result grant income and run both upgrade shops before the
// next round. Collaborator calls are blocking; an error from either agent
// aborts the match.
//
// Termination is guaranteed by attrition: every attack deals at least 1
// damage and health never regenerates.
func (m *Match) Run(player, enemy Agent) (RoundOutcome, error) {
	if m.state != StatePreMatch {
		return m.outcome, fmt.Errorf("match already started (state %s)", m.state)
	}

	playerRoster := newRosterShop(m.PlayerGold, m.Player, m.cfg.Units)
	if err := player.BuildRoster(playerRoster); err != nil {
		return OutcomeContinue, fmt.Errorf("player roster phase: %w", err)
	}
	m.PlayerGold = playerRoster.Gold()

	enemyRoster := newRosterShop(m.EnemyGold, m.Enemy, m.cfg.Units)
	if err := enemy.BuildRoster(enemyRoster); err != nil {
		return OutcomeContinue, fmt.Errorf("enemy roster phase: %w", err)
	}
	m.EnemyGold = enemyRoster.Gold()

	m.state = StateInProgress

	for {
		report := m.playRound()
		player.ReviewRound(report)
		enemy.ReviewRound(report)

		if report.Outcome.Terminal() {
			return m.outcome, nil
		}

		income := RoundIncome(m.cfg.Economy)
		m.PlayerGold += income
		m.EnemyGold += income

		playerShop := newUpgradeShop(m.PlayerGold, m.PlayerWeapon, m.cfg.Upgrades)
		if err := player.PickUpgrades(playerShop); err != nil {
			return OutcomeContinue, fmt.Errorf("player upgrade phase: %w", err)
		}
		m.PlayerGold = playerShop.Gold()

		enemyShop := newUpgradeShop(m.EnemyGold, m.EnemyWeapon, m.cfg.Upgrades)
		if err := enemy.PickUpgrades(enemyShop); err != nil {
			return OutcomeContinue, fmt.Errorf("enemy upgrade phase: %w", err)
		}
		m.EnemyGold = enemyShop.Gold()

		m.round++
	}
}

// playRound resolves one combat round and assembles its report, moving the
// match to Finished on a terminal outcome.
func (m *Match) playRound() RoundReport {
	attacks, outcome := ResolveRound(m.Player, m.Enemy, m.rng)
	if outcome.Terminal() {
		m.state = StateFinished
		m.outcome = outcome
	}
	return RoundReport{
		Round:       m.round,
		Attacks:     attacks,
		Outcome:     outcome,
		PlayerUnits: teamStatus(m.Player),
		EnemyUnits:  teamStatus(m.Enemy),
	}
}
