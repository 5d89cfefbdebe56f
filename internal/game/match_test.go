package game

import (
	"errors"
	"testing"

	"github.com/NP-Dat/battle-arena/internal/models"
)

func testConfig() *models.ArenaConfig {
	return &models.ArenaConfig{
		Economy:  models.EconomyConfig{StartingGold: 20, RoundIncome: 5, IncomeBonus: 2},
		MaxUnits: 6,
		Hero:     models.HeroSpec{MaxHP: 30, Attack: 8, Defense: 2, Crit: 0.10, Speed: 6},
		Units:    testUnits,
		Upgrades: testUpgrades,
	}
}

// scriptedAgent buys a fixed list of roster picks and nothing else, recording
// every report it receives.
type scriptedAgent struct {
	rosterPicks []int
	reports     []RoundReport
	err         error
}

func (a *scriptedAgent) BuildRoster(shop *RosterShop) error {
	if a.err != nil {
		return a.err
	}
	for _, pick := range a.rosterPicks {
		if err := shop.Buy(pick); err != nil {
			return err
		}
	}
	return nil
}

func (a *scriptedAgent) PickUpgrades(shop *UpgradeShop) error { return a.err }

func (a *scriptedAgent) ReviewRound(report RoundReport) {
	a.reports = append(a.reports, report)
}

func TestNewMatchRequiresRandomSource(t *testing.T) {
	_, err := NewMatch(testConfig(), "alice", "bob", nil)
	if !errors.Is(err, ErrNoRandomSource) {
		t.Fatalf("NewMatch(nil rng) = %v, want ErrNoRandomSource", err)
	}
}

func TestNewMatchInitialState(t *testing.T) {
	m, err := NewMatch(testConfig(), "alice", "bob", NewRand(1))
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}

	if m.State() != StatePreMatch {
		t.Errorf("state = %s, want PRE_MATCH", m.State())
	}
	if m.Round() != 1 {
		t.Errorf("round = %d, want 1", m.Round())
	}
	if m.Outcome() != OutcomeContinue {
		t.Errorf("outcome = %s before finish, want continue", m.Outcome())
	}
	if m.PlayerGold != 20 || m.EnemyGold != 20 {
		t.Errorf("gold = %d/%d, want 20/20", m.PlayerGold, m.EnemyGold)
	}

	for _, team := range []*Team{m.Player, m.Enemy} {
		if len(team.Units) != 1 {
			t.Fatalf("team %s has %d units, want just the hero", team.Name, len(team.Units))
		}
		hero := team.Units[0]
		if !hero.IsHero || hero.Weapon == nil || hero.Name != team.Name {
			t.Errorf("team %s hero = %+v, want a weapon-bearing hero named after the owner", team.Name, hero)
		}
		if hero.HP != 30 {
			t.Errorf("hero HP = %d, want 30", hero.HP)
		}
	}
}

func TestMatchRunsToCompletion(t *testing.T) {
	m, err := NewMatch(testConfig(), "alice", "bob", NewRand(7))
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}

	player := &scriptedAgent{rosterPicks: []int{0, 1}}
	enemy := &scriptedAgent{rosterPicks: []int{1, 2}}

	outcome, err := m.Run(player, enemy)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !outcome.Terminal() {
		t.Fatalf("Run returned non-terminal outcome %s", outcome)
	}
	if m.State() != StateFinished {
		t.Errorf("state = %s after Run, want FINISHED", m.State())
	}
	if m.Outcome() != outcome {
		t.Errorf("Outcome() = %s, Run returned %s", m.Outcome(), outcome)
	}

	// Both sides saw the same reports, numbered from 1 with only the last
	// terminal.
	if len(player.reports) == 0 {
		t.Fatal("player agent received no reports")
	}
	if len(player.reports) != len(enemy.reports) {
		t.Fatalf("report counts differ: %d vs %d", len(player.reports), len(enemy.reports))
	}
	for i, report := range player.reports {
		if report.Round != i+1 {
			t.Errorf("report %d has round %d, want %d", i, report.Round, i+1)
		}
		last := i == len(player.reports)-1
		if report.Outcome.Terminal() != last {
			t.Errorf("report %d terminal = %v, want %v", i, report.Outcome.Terminal(), last)
		}
		if len(report.PlayerUnits) != 3 || len(report.EnemyUnits) != 3 {
			t.Errorf("report %d rosters = %d/%d units, want full 3/3 including the dead",
				i, len(report.PlayerUnits), len(report.EnemyUnits))
		}
	}
}

func TestMatchDeterministicForSeed(t *testing.T) {
	run := func() (RoundOutcome, int) {
		m, err := NewMatch(testConfig(), "alice", "bob", NewRand(99))
		if err != nil {
			t.Fatalf("NewMatch failed: %v", err)
		}
		player := &scriptedAgent{rosterPicks: []int{0, 0}}
		enemy := &scriptedAgent{rosterPicks: []int{2}}
		outcome, err := m.Run(player, enemy)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return outcome, m.Round()
	}

	outcome1, rounds1 := run()
	outcome2, rounds2 := run()
	if outcome1 != outcome2 || rounds1 != rounds2 {
		t.Errorf("same seed diverged: %s in %d rounds vs %s in %d rounds",
			outcome1, rounds1, outcome2, rounds2)
	}
}

func TestMatchRunRejectsRestart(t *testing.T) {
	m, err := NewMatch(testConfig(), "alice", "bob", NewRand(7))
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}

	player := &scriptedAgent{}
	enemy := &scriptedAgent{}
	if _, err := m.Run(player, enemy); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if _, err := m.Run(player, enemy); err == nil {
		t.Error("second Run succeeded, want error")
	}
}

func TestMatchAbortsOnAgentError(t *testing.T) {
	m, err := NewMatch(testConfig(), "alice", "bob", NewRand(7))
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}

	agentErr := errors.New("client disconnected")
	player := &scriptedAgent{err: agentErr}
	enemy := &scriptedAgent{}

	if _, err := m.Run(player, enemy); !errors.Is(err, agentErr) {
		t.Errorf("Run = %v, want wrapped agent error", err)
	}
}
