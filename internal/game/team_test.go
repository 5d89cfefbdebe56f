package game

import "testing"

func TestTeamRosterCap(t *testing.T) {
	team := NewTeam("Alice", 2)
	if err := team.AddUnit(&Unit{Name: "A", MaxHP: 10, HP: 10}); err != nil {
		t.Fatalf("first AddUnit failed: %v", err)
	}
	if team.Full() {
		t.Error("team reports full with one slot left")
	}
	if err := team.AddUnit(&Unit{Name: "B", MaxHP: 10, HP: 10}); err != nil {
		t.Fatalf("second AddUnit failed: %v", err)
	}
	if !team.Full() {
		t.Error("team at cap does not report full")
	}

	if err := team.AddUnit(&Unit{Name: "C", MaxHP: 10, HP: 10}); err != ErrRosterFull {
		t.Errorf("AddUnit past cap = %v, want ErrRosterFull", err)
	}
	if len(team.Units) != 2 {
		t.Errorf("roster size = %d after rejected add, want 2", len(team.Units))
	}
}

func TestAliveUnitsKeepsRosterOrder(t *testing.T) {
	team := NewTeam("Alice", 3)
	a := &Unit{Name: "A", MaxHP: 10, HP: 10}
	b := &Unit{Name: "B", MaxHP: 10, HP: 0}
	c := &Unit{Name: "C", MaxHP: 10, HP: 4}
	for _, u := range []*Unit{a, b, c} {
		if err := team.AddUnit(u); err != nil {
			t.Fatal(err)
		}
	}

	alive := team.AliveUnits()
	if len(alive) != 2 || alive[0] != a || alive[1] != c {
		t.Errorf("AliveUnits = %v, want [A C] in roster order", names(alive))
	}

	// Dead units stay on the roster for reporting.
	if len(team.Units) != 3 {
		t.Errorf("roster size = %d, want 3", len(team.Units))
	}
}

func TestIsDefeated(t *testing.T) {
	team := NewTeam("Alice", 2)
	u := &Unit{Name: "A", MaxHP: 10, HP: 10}
	if err := team.AddUnit(u); err != nil {
		t.Fatal(err)
	}

	if team.IsDefeated() {
		t.Error("team with a living unit reports defeated")
	}
	u.HP = 0
	if !team.IsDefeated() {
		t.Error("team with all units dead does not report defeated")
	}
}

func TestEmptyTeamIsDefeated(t *testing.T) {
	if !NewTeam("Alice", 2).IsDefeated() {
		t.Error("empty team does not report defeated")
	}
}

func names(units []*Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Name
	}
	return out
}
