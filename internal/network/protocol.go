package network

import "github.com/NP-Dat/battle-arena/internal/models"

// MessageType defines the types of messages that can be exchanged
type MessageType string

// Define message types for client-server communication
const (
	// Client to Server message types
	MessageTypeLogin      MessageType = "login"
	MessageTypeQueue      MessageType = "queue"
	MessageTypeBuyUnit    MessageType = "buy_unit"
	MessageTypeBuyUpgrade MessageType = "buy_upgrade"
	MessageTypeShopDone   MessageType = "shop_done"
	MessageTypeQuit       MessageType = "quit"

	// Server to Client message types
	MessageTypeAuthResult  MessageType = "auth_result"
	MessageTypeMatchStart  MessageType = "match_start"
	MessageTypeShopOpen    MessageType = "shop_open"
	MessageTypeShopResult  MessageType = "shop_result"
	MessageTypeRoundReport MessageType = "round_report"
	MessageTypeMatchOver   MessageType = "match_over"
	MessageTypeGameEvent   MessageType = "game_event"
	MessageTypeError       MessageType = "error"
)

// ShopPhase identifies which shop a shop_open message refers to.
type ShopPhase string

const (
	ShopPhaseRoster  ShopPhase = "roster"
	ShopPhaseUpgrade ShopPhase = "upgrade"
)

// Message is the base structure for all network messages
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// ----- Client to Server Message Payloads -----

// LoginPayload represents the payload for a login message
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// QueuePayload asks for a match: against the next queued player, or against
// the server bot immediately.
type QueuePayload struct {
	VersusBot bool `json:"versus_bot,omitempty"`
}

// BuyPayload carries the catalog index of a shop purchase. It is used by
// both buy_unit and buy_upgrade messages.
type BuyPayload struct {
	Index int `json:"index"`
}

// QuitPayload represents the payload for quitting
type QuitPayload struct {
	Reason string `json:"reason,omitempty"`
}

// ----- Server to Client Message Payloads -----

// AuthResultPayload represents the payload for authentication result
type AuthResultPayload struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
}

// MatchStartPayload announces a new match to a client.
type MatchStartPayload struct {
	MatchID          string `json:"match_id"`
	OpponentUsername string `json:"opponent_username"`
	VersusBot        bool   `json:"versus_bot"`
	StartingGold     int    `json:"starting_gold"`
}

// WeaponInfo mirrors the hero weapon bonuses for display.
type WeaponInfo struct {
	DamageBonus int     `json:"damage_bonus"`
	CritBonus   float64 `json:"crit_bonus"`
	SpeedBonus  int     `json:"speed_bonus"`
}

// ShopOpenPayload opens a purchase phase on the client. Exactly one of Units
// or Upgrades is populated, matching Phase. The client answers with any
// number of buy messages followed by shop_done.
type ShopOpenPayload struct {
	Phase    ShopPhase             `json:"phase"`
	Gold     int                   `json:"gold"`
	TeamSize int                   `json:"team_size,omitempty"`
	MaxUnits int                   `json:"max_units,omitempty"`
	Units    []models.UnitTemplate `json:"units,omitempty"`
	Upgrades []models.UpgradeSpec  `json:"upgrades,omitempty"`
	Weapon   *WeaponInfo           `json:"weapon,omitempty"`
}

// ShopResultPayload answers a single buy message.
type ShopResultPayload struct {
	Success  bool   `json:"success"`
	Gold     int    `json:"gold"`
	TeamSize int    `json:"team_size,omitempty"`
	Message  string `json:"message,omitempty"`
}

// AttackInfo describes one resolved attack for rendering.
type AttackInfo struct {
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Damage   int    `json:"damage"`
	Crit     bool   `json:"crit"`
}

// UnitStatusInfo is a unit's health snapshot for rendering.
type UnitStatusInfo struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Alive bool   `json:"alive"`
}

// RoundReportPayload carries the full result of one combat round. YourUnits
// is always the receiving client's side.
type RoundReportPayload struct {
	Round         int              `json:"round"`
	Attacks       []AttackInfo     `json:"attacks"`
	Outcome       string           `json:"outcome"`
	YourUnits     []UnitStatusInfo `json:"your_units"`
	OpponentUnits []UnitStatusInfo `json:"opponent_units"`
}

// MatchOverPayload announces the terminal outcome of a match.
type MatchOverPayload struct {
	Winner string `json:"winner,omitempty"` // Username of winner, empty on a draw
	Draw   bool   `json:"draw,omitempty"`
	Reason string `json:"reason"`
	Rounds int    `json:"rounds"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

// GameEventPayload represents a free-form server notification.
type GameEventPayload struct {
	Message string `json:"message"`
}

// ErrorPayload represents an error message
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
