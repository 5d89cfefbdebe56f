package game

// Team is an ordered roster of units. Insertion order is meaningful: the
// combat resolver breaks speed ties by it. Defeated units are never removed;
// they stay at 0 HP so reports can show the full roster.
type Team struct {
	Name  string
	Units []*Unit
	cap   int
}

// NewTeam creates a team with the given roster cap.
func NewTeam(name string, cap int) *Team {
	return &Team{Name: name, cap: cap}
}

// AddUnit appends a unit to the roster. It fails with ErrRosterFull when the
// team is already at its cap, leaving the roster untouched.
func (t *Team) AddUnit(u *Unit) error {
	if len(t.Units) >= t.cap {
		return ErrRosterFull
	}
	t.Units = append(t.Units, u)
	return nil
}

// Full reports whether the roster has reached its cap.
func (t *Team) Full() bool {
	return len(t.Units) >= t.cap
}

// AliveUnits returns the units with HP > 0, in roster order. The result is a
// fresh slice; callers may not use it to mutate the roster itself.
func (t *Team) AliveUnits() []*Unit {
	alive := make([]*Unit, 0, len(t.Units))
	for _, u := range t.Units {
		if u.IsAlive() {
			alive = append(alive, u)
		}
	}
	return alive
}

// IsDefeated reports whether every unit on the team is dead.
func (t *Team) IsDefeated() bool {
	for _, u := range t.Units {
		if u.IsAlive() {
			return false
		}
	}
	return true
}
