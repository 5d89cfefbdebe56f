package game

import "errors"

// Sentinel errors reported to purchasing collaborators. Shop operations check
// these conditions before mutating anything, so a failed purchase never
// leaves a half-applied ledger, roster or weapon.
var (
	// ErrInsufficientFunds is returned when a purchase costs more than the
	// current gold balance.
	ErrInsufficientFunds = errors.New("insufficient gold")

	// ErrRosterFull is returned when a unit purchase would exceed the team cap.
	ErrRosterFull = errors.New("roster is full")

	// ErrUnknownItem is returned for an out-of-range catalog index.
	ErrUnknownItem = errors.New("unknown catalog item")

	// ErrNoRandomSource is returned by NewMatch when no random source is
	// injected. The engine never falls back to a global generator.
	ErrNoRandomSource = errors.New("no random source configured")
)
