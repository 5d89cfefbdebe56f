package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NP-Dat/battle-arena/internal/game"
	"github.com/NP-Dat/battle-arena/internal/models"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

// AuthManager handles accounts and login state. Accounts are created on
// first login and held in memory only; nothing survives a server restart.
type AuthManager struct {
	accounts    map[string]*models.Player
	activeUsers map[string]string // username -> client ID
	mu          sync.RWMutex
}

// NewAuthManager creates a new authentication manager
func NewAuthManager() *AuthManager {
	return &AuthManager{
		accounts:    make(map[string]*models.Player),
		activeUsers: make(map[string]string),
	}
}

// Authenticate verifies the credentials, creating the account if the
// username is unknown.
func (am *AuthManager) Authenticate(username, password string) (*models.Player, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password cannot be empty")
	}

	am.mu.Lock()
	defer am.mu.Unlock()

	player, exists := am.accounts[username]
	if !exists {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("error creating user account")
		}
		player = &models.Player{
			ID:             uuid.New().String(),
			Username:       username,
			HashedPassword: string(hashed),
		}
		am.accounts[username] = player
		logger.Auth.Info("Created new account for user: %s", username)
		return player, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.HashedPassword), []byte(password)); err != nil {
		return nil, errors.New("invalid username or password")
	}
	return player, nil
}

// GetPlayer returns the account for a username, if it exists.
func (am *AuthManager) GetPlayer(username string) (*models.Player, bool) {
	am.mu.RLock()
	defer am.mu.RUnlock()
	player, ok := am.accounts[username]
	return player, ok
}

// RecordResult applies a finished match outcome to the player's record and
// returns the updated record. Unknown usernames (the bot) are ignored.
func (am *AuthManager) RecordResult(username string, won bool, outcome game.RoundOutcome) models.MatchRecord {
	am.mu.Lock()
	defer am.mu.Unlock()

	player, ok := am.accounts[username]
	if !ok {
		return models.MatchRecord{}
	}
	switch {
	case outcome == game.OutcomeDraw:
		player.Record.Draws++
	case won:
		player.Record.Wins++
	default:
		player.Record.Losses++
	}
	return player.Record
}

// RegisterActiveUser registers a user as active with their client ID
func (am *AuthManager) RegisterActiveUser(username, clientID string) error {
	am.mu.Lock()
	defer am.mu.Unlock()

	if existing, exists := am.activeUsers[username]; exists && existing != clientID {
		return errors.New("user already logged in from another client")
	}
	am.activeUsers[username] = clientID
	return nil
}

// UnregisterActiveUser removes a user from the active users list
func (am *AuthManager) UnregisterActiveUser(username string) {
	am.mu.Lock()
	defer am.mu.Unlock()
	delete(am.activeUsers, username)
}

// IsUserActive checks if a user is currently logged in
func (am *AuthManager) IsUserActive(username string) bool {
	am.mu.RLock()
	defer am.mu.RUnlock()
	_, exists := am.activeUsers[username]
	return exists
}
