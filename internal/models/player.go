package models

// Player represents an authenticated account. Accounts live only for the
// lifetime of the server process; there is no on-disk player store.
type Player struct {
	ID             string
	Username       string
	HashedPassword string
	Record         MatchRecord
}

// MatchRecord tallies a player's finished matches.
type MatchRecord struct {
	Wins   int
	Losses int
	Draws  int
}

// Total returns the number of finished matches in the record.
func (r MatchRecord) Total() int {
	return r.Wins + r.Losses + r.Draws
}
