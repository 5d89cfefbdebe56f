package server

import (
	"sync"
	"time"

	"github.com/NP-Dat/battle-arena/internal/network"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

// MatchmakingManager pairs queued clients into matches.
type MatchmakingManager struct {
	server      *Server
	waitingPool []*Client
	poolMutex   sync.Mutex
}

// NewMatchmakingManager creates a matchmaking manager and starts its pairing
// loop.
func NewMatchmakingManager(server *Server) *MatchmakingManager {
	mm := &MatchmakingManager{
		server:      server,
		waitingPool: make([]*Client, 0),
	}

	go mm.matchmakingLoop()

	return mm
}

// AddToWaitingPool adds a client to the waiting pool for matchmaking
func (mm *MatchmakingManager) AddToWaitingPool(client *Client) {
	mm.poolMutex.Lock()
	defer mm.poolMutex.Unlock()

	for _, c := range mm.waitingPool {
		if c.ID == client.ID {
			return // Already queued
		}
	}

	mm.waitingPool = append(mm.waitingPool, client)

	event := &network.GameEventPayload{
		Message: "You have been added to the matchmaking queue. Waiting for an opponent...",
	}
	if err := client.Codec.Send(network.MessageTypeGameEvent, event); err != nil {
		logger.Server.Error("Error sending matchmaking event to client %s: %v", client.ID, err)
	}
}

// RemoveFromWaitingPool removes a client from the waiting pool
func (mm *MatchmakingManager) RemoveFromWaitingPool(clientID string) {
	mm.poolMutex.Lock()
	defer mm.poolMutex.Unlock()

	for i, client := range mm.waitingPool {
		if client.ID == clientID {
			mm.waitingPool = append(mm.waitingPool[:i], mm.waitingPool[i+1:]...)
			break
		}
	}
}

// matchmakingLoop periodically pairs waiting clients.
func (mm *MatchmakingManager) matchmakingLoop() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		mm.tryMatchmaking()
	}
}

// tryMatchmaking pairs the two longest-waiting clients.
func (mm *MatchmakingManager) tryMatchmaking() {
	mm.poolMutex.Lock()
	defer mm.poolMutex.Unlock()

	if len(mm.waitingPool) < 2 {
		return
	}

	player1 := mm.waitingPool[0]
	player2 := mm.waitingPool[1]
	mm.waitingPool = mm.waitingPool[2:]

	if err := mm.server.sessions.CreateSession(player1, player2); err != nil {
		logger.Server.Error("Failed to create session for %s vs %s: %v",
			player1.Username, player2.Username, err)
	}
}
