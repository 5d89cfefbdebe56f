package server

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NP-Dat/battle-arena/internal/bot"
	"github.com/NP-Dat/battle-arena/internal/game"
	"github.com/NP-Dat/battle-arena/internal/network"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

// botName is the display name of the automated opponent.
const botName = "Warlord"

// SessionManager runs the live match sessions.
type SessionManager struct {
	server        *Server
	sessions      map[string]*MatchSession
	sessionsMutex sync.RWMutex
}

// MatchSession is one running match. Player1 is always human; Player2 is nil
// for bot matches.
type MatchSession struct {
	ID        string
	Match     *game.Match
	Player1   *Client
	Player2   *Client
	Seed      int64
	StartTime time.Time
}

// NewSessionManager creates a new session manager
func NewSessionManager(server *Server) *SessionManager {
	return &SessionManager{
		server:   server,
		sessions: make(map[string]*MatchSession),
	}
}

// CreateSession starts a match between two connected clients.
func (sm *SessionManager) CreateSession(player1, player2 *Client) error {
	return sm.create(player1, player2)
}

// CreateBotSession starts a match between a client and the server bot.
func (sm *SessionManager) CreateBotSession(player *Client) error {
	return sm.create(player, nil)
}

func (sm *SessionManager) create(player1, player2 *Client) error {
	seed, err := game.NewSeed()
	if err != nil {
		return fmt.Errorf("failed to seed match: %w", err)
	}
	rng := game.NewRand(seed)

	opponentName := botName
	if player2 != nil {
		opponentName = player2.Username
	}

	match, err := game.NewMatch(sm.server.arenaConfig, player1.Username, opponentName, rng)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	session := &MatchSession{
		ID:        uuid.New().String(),
		Match:     match,
		Player1:   player1,
		Player2:   player2,
		Seed:      seed,
		StartTime: time.Now(),
	}

	sm.sessionsMutex.Lock()
	sm.sessions[session.ID] = session
	sm.sessionsMutex.Unlock()

	player1.MatchID = session.ID
	if player2 != nil {
		player2.MatchID = session.ID
	}

	sm.announce(player1, session, opponentName, player2 == nil)
	if player2 != nil {
		sm.announce(player2, session, player1.Username, false)
	}

	logger.Game.Info("Match %s started: %s vs %s (seed %d)",
		session.ID, player1.Username, opponentName, seed)

	go sm.runSession(session, rng)

	return nil
}

// announce sends the match_start message to one client.
func (sm *SessionManager) announce(client *Client, session *MatchSession, opponent string, versusBot bool) {
	payload := &network.MatchStartPayload{
		MatchID:          session.ID,
		OpponentUsername: opponent,
		VersusBot:        versusBot,
		StartingGold:     sm.server.arenaConfig.Economy.StartingGold,
	}
	if err := client.Codec.Send(network.MessageTypeMatchStart, payload); err != nil {
		logger.Game.Error("Error sending match start to %s: %v", client.Username, err)
	}
}

// runSession drives the match to completion and reports the result.
func (sm *SessionManager) runSession(session *MatchSession, rng *rand.Rand) {
	agent1 := &remoteAgent{session: sm, s: session, client: session.Player1, playerSide: true}

	var agent2 game.Agent
	if session.Player2 != nil {
		agent2 = &remoteAgent{session: sm, s: session, client: session.Player2}
	} else {
		agent2 = bot.New(botName, rng)
	}

	outcome, err := session.Match.Run(agent1, agent2)
	if err != nil {
		logger.Game.Warn("Match %s aborted: %v", session.ID, err)
		sm.handleAbort(session)
	} else {
		sm.handleMatchOver(session, outcome)
	}

	sm.endSession(session)
}

// handleMatchOver records results and notifies both clients.
func (sm *SessionManager) handleMatchOver(session *MatchSession, outcome game.RoundOutcome) {
	p1 := session.Player1.Username
	p2 := botName
	if session.Player2 != nil {
		p2 = session.Player2.Username
	}

	var winner, reason string
	switch outcome {
	case game.OutcomePlayerWin:
		winner = p1
		reason = fmt.Sprintf("%s's team was wiped out", p2)
	case game.OutcomeEnemyWin:
		winner = p2
		reason = fmt.Sprintf("%s's team was wiped out", p1)
	case game.OutcomeDraw:
		reason = "both teams were wiped out"
	}

	logger.Game.Info("Match %s finished after %d rounds: outcome=%s winner=%q",
		session.ID, session.Match.Round(), outcome, winner)

	sm.sendMatchOver(session.Player1, winner, reason, outcome, session.Match.Round())
	if session.Player2 != nil {
		sm.sendMatchOver(session.Player2, winner, reason, outcome, session.Match.Round())
	}
}

// handleAbort treats a disconnect mid-match as a forfeit: whoever is still
// connected wins.
func (sm *SessionManager) handleAbort(session *MatchSession) {
	for _, client := range []*Client{session.Player1, session.Player2} {
		if client == nil || client.MatchID != session.ID || !sm.server.hasClient(client.ID) {
			continue
		}
		sm.sendMatchOver(client, client.Username, "opponent left the match",
			forfeitOutcome(session, client), session.Match.Round())
	}
}

// forfeitOutcome maps a forfeit win for client onto the side-relative
// outcome used for record keeping.
func forfeitOutcome(session *MatchSession, client *Client) game.RoundOutcome {
	if client == session.Player1 {
		return game.OutcomePlayerWin
	}
	return game.OutcomeEnemyWin
}

// sendMatchOver records the result for one client and sends the match_over
// message.
func (sm *SessionManager) sendMatchOver(client *Client, winner, reason string, outcome game.RoundOutcome, rounds int) {
	record := sm.server.authManager.RecordResult(client.Username, winner == client.Username, outcome)

	payload := &network.MatchOverPayload{
		Winner: winner,
		Draw:   outcome == game.OutcomeDraw,
		Reason: reason,
		Rounds: rounds,
		Wins:   record.Wins,
		Losses: record.Losses,
		Draws:  record.Draws,
	}
	if err := client.Codec.Send(network.MessageTypeMatchOver, payload); err != nil {
		logger.Game.Error("Error sending match over to %s: %v", client.Username, err)
	}
}

// endSession removes the session and detaches its clients.
func (sm *SessionManager) endSession(session *MatchSession) {
	sm.sessionsMutex.Lock()
	delete(sm.sessions, session.ID)
	sm.sessionsMutex.Unlock()

	if session.Player1.MatchID == session.ID {
		session.Player1.MatchID = ""
	}
	if session.Player2 != nil && session.Player2.MatchID == session.ID {
		session.Player2.MatchID = ""
	}
}

// hasClient reports whether a client is still connected.
func (s *Server) hasClient(clientID string) bool {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()
	_, ok := s.clients[clientID]
	return ok
}

// remoteAgent bridges one human side of a match to its TCP client. Shop
// phases block on the client's decision channel until shop_done or
// disconnect; round reports are pushed as they happen.
type remoteAgent struct {
	session    *SessionManager
	s          *MatchSession
	client     *Client
	playerSide bool
}

// BuildRoster runs the pre-match unit shop against the remote client.
func (a *remoteAgent) BuildRoster(shop *game.RosterShop) error {
	a.drainStale()

	open := &network.ShopOpenPayload{
		Phase:    network.ShopPhaseRoster,
		Gold:     shop.Gold(),
		TeamSize: shop.TeamSize(),
		MaxUnits: a.session.server.arenaConfig.MaxUnits,
		Units:    shop.Catalog(),
	}
	if err := a.client.Codec.Send(network.MessageTypeShopOpen, open); err != nil {
		return fmt.Errorf("open roster shop for %s: %w", a.client.Username, err)
	}

	for {
		cmd, ok := <-a.client.shop
		if !ok {
			return fmt.Errorf("client %s disconnected", a.client.Username)
		}
		switch cmd.kind {
		case network.MessageTypeShopDone:
			return nil
		case network.MessageTypeBuyUnit:
			err := shop.Buy(cmd.index)
			if sendErr := a.sendShopResult(err, shop.Gold(), shop.TeamSize()); sendErr != nil {
				return sendErr
			}
		default:
			if sendErr := a.sendShopResult(fmt.Errorf("only units can be bought now"), shop.Gold(), shop.TeamSize()); sendErr != nil {
				return sendErr
			}
		}
	}
}

// PickUpgrades runs one between-round upgrade shop against the remote
// client.
func (a *remoteAgent) PickUpgrades(shop *game.UpgradeShop) error {
	a.drainStale()

	weapon := shop.Weapon()
	open := &network.ShopOpenPayload{
		Phase:    network.ShopPhaseUpgrade,
		Gold:     shop.Gold(),
		Upgrades: shop.Catalog(),
		Weapon: &network.WeaponInfo{
			DamageBonus: weapon.DamageBonus,
			CritBonus:   weapon.CritBonus,
			SpeedBonus:  weapon.SpeedBonus,
		},
	}
	if err := a.client.Codec.Send(network.MessageTypeShopOpen, open); err != nil {
		return fmt.Errorf("open upgrade shop for %s: %w", a.client.Username, err)
	}

	for {
		cmd, ok := <-a.client.shop
		if !ok {
			return fmt.Errorf("client %s disconnected", a.client.Username)
		}
		switch cmd.kind {
		case network.MessageTypeShopDone:
			return nil
		case network.MessageTypeBuyUpgrade:
			err := shop.Buy(cmd.index)
			if sendErr := a.sendShopResult(err, shop.Gold(), 0); sendErr != nil {
				return sendErr
			}
		default:
			if sendErr := a.sendShopResult(fmt.Errorf("only upgrades can be bought now"), shop.Gold(), 0); sendErr != nil {
				return sendErr
			}
		}
	}
}

// ReviewRound pushes the round report to the client, translated to its
// perspective.
func (a *remoteAgent) ReviewRound(report game.RoundReport) {
	payload := &network.RoundReportPayload{
		Round:   report.Round,
		Outcome: relativeOutcome(report.Outcome, a.playerSide),
	}
	for _, atk := range report.Attacks {
		payload.Attacks = append(payload.Attacks, network.AttackInfo{
			Attacker: atk.Attacker,
			Target:   atk.Target,
			Damage:   atk.Damage,
			Crit:     atk.Crit,
		})
	}

	yours, theirs := report.PlayerUnits, report.EnemyUnits
	if !a.playerSide {
		yours, theirs = theirs, yours
	}
	payload.YourUnits = statusInfo(yours)
	payload.OpponentUnits = statusInfo(theirs)

	if err := a.client.Codec.Send(network.MessageTypeRoundReport, payload); err != nil {
		logger.Game.Error("Error sending round report to %s: %v", a.client.Username, err)
	}
}

// sendShopResult answers one buy attempt.
func (a *remoteAgent) sendShopResult(buyErr error, gold, teamSize int) error {
	result := &network.ShopResultPayload{
		Success:  buyErr == nil,
		Gold:     gold,
		TeamSize: teamSize,
	}
	if buyErr != nil {
		result.Message = buyErr.Error()
	}
	if err := a.client.Codec.Send(network.MessageTypeShopResult, result); err != nil {
		return fmt.Errorf("send shop result to %s: %w", a.client.Username, err)
	}
	return nil
}

// drainStale discards decisions buffered outside a shop phase so they cannot
// be replayed into the next one.
func (a *remoteAgent) drainStale() {
	for {
		select {
		case _, ok := <-a.client.shop:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// relativeOutcome converts a side-absolute outcome to the receiving client's
// point of view.
func relativeOutcome(outcome game.RoundOutcome, playerSide bool) string {
	switch outcome {
	case game.OutcomePlayerWin:
		if playerSide {
			return "you"
		}
		return "opponent"
	case game.OutcomeEnemyWin:
		if playerSide {
			return "opponent"
		}
		return "you"
	default:
		return string(outcome)
	}
}

func statusInfo(units []game.UnitStatus) []network.UnitStatusInfo {
	info := make([]network.UnitStatusInfo, 0, len(units))
	for _, u := range units {
		info = append(info, network.UnitStatusInfo{
			Name:  u.Name,
			HP:    u.HP,
			MaxHP: u.MaxHP,
			Alive: u.Alive,
		})
	}
	return info
}
