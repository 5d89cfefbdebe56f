package server

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NP-Dat/battle-arena/internal/models"
	"github.com/NP-Dat/battle-arena/internal/network"
	"github.com/NP-Dat/battle-arena/internal/persistence"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

// errClientQuit signals a clean client-initiated disconnect.
var errClientQuit = errors.New("client quit")

// Server represents the arena game server
type Server struct {
	Host string
	Port int

	listener   net.Listener
	clients    map[string]*Client
	clientsMux sync.Mutex

	arenaConfig  *models.ArenaConfig
	configLoader *persistence.ConfigLoader
	authManager  *AuthManager
	matchmaker   *MatchmakingManager
	sessions     *SessionManager
}

// Client represents a connected client
type Client struct {
	ID       string
	Username string
	Conn     net.Conn
	Codec    *network.Codec
	MatchID  string
	Server   *Server

	// shop carries purchase commands from the reader goroutine to the match
	// session while a shop phase is open. Closed exactly once on disconnect.
	shop      chan shopCommand
	closeShop sync.Once
}

// shopCommand is one client decision during a shop phase.
type shopCommand struct {
	kind  network.MessageType // buy_unit, buy_upgrade or shop_done
	index int
}

// disconnect closes the client's shop channel so a session blocked on a shop
// phase learns the client is gone.
func (c *Client) disconnect() {
	c.closeShop.Do(func() { close(c.shop) })
}

// NewServer creates a new arena server
func NewServer(host string, port int, basePath string) *Server {
	s := &Server{
		Host:         host,
		Port:         port,
		clients:      make(map[string]*Client),
		configLoader: persistence.NewConfigLoader(basePath),
		authManager:  NewAuthManager(),
	}
	s.sessions = NewSessionManager(s)
	s.matchmaker = NewMatchmakingManager(s)
	return s
}

// Start loads the arena configuration and begins accepting connections.
func (s *Server) Start() error {
	var err error
	s.arenaConfig, err = s.configLoader.LoadArenaConfig()
	if err != nil {
		return fmt.Errorf("failed to load arena configuration: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	s.listener, err = net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start server on %s: %w", addr, err)
	}

	logger.Server.Info("Server started on %s (%d units, %d upgrades in catalog)",
		addr, len(s.arenaConfig.Units), len(s.arenaConfig.Upgrades))

	go s.acceptConnections()

	return nil
}

// Stop stops the server and closes all connections
func (s *Server) Stop() error {
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			return fmt.Errorf("failed to close listener: %w", err)
		}

		s.clientsMux.Lock()
		for _, client := range s.clients {
			client.Conn.Close()
		}
		s.clients = make(map[string]*Client)
		s.clientsMux.Unlock()
	}

	return nil
}

// acceptConnections accepts incoming connections and handles them
func (s *Server) acceptConnections() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			logger.Server.Error("Error accepting connection: %v", err)
			if opErr, ok := err.(*net.OpError); ok && opErr.Temporary() {
				time.Sleep(time.Second)
				continue
			}
			// Listener closed
			break
		}

		client := &Client{
			ID:     uuid.New().String(),
			Conn:   conn,
			Codec:  network.NewCodec(conn),
			Server: s,
			shop:   make(chan shopCommand, 8),
		}

		s.clientsMux.Lock()
		s.clients[client.ID] = client
		s.clientsMux.Unlock()

		go s.handleClient(client)
	}
}

// handleClient manages communication with a connected client
func (s *Server) handleClient(client *Client) {
	defer func() {
		s.clientsMux.Lock()
		delete(s.clients, client.ID)
		s.clientsMux.Unlock()

		s.matchmaker.RemoveFromWaitingPool(client.ID)
		if client.Username != "" {
			s.authManager.UnregisterActiveUser(client.Username)
		}
		client.disconnect()

		client.Conn.Close()
		logger.Server.Info("Client %s disconnected", client.ID)
	}()

	logger.Server.Info("New client connected: %s from %s", client.ID, client.Conn.RemoteAddr())

	welcome := &network.GameEventPayload{
		Message: "Welcome to Text Battle Arena! Log in with your username and password.",
	}
	if err := client.Codec.Send(network.MessageTypeGameEvent, welcome); err != nil {
		logger.Server.Error("Error sending welcome message to client %s: %v", client.ID, err)
		return
	}

	for {
		msg, err := client.Codec.Receive()
		if err != nil {
			logger.Network.Debug("Receive from client %s failed: %v", client.ID, err)
			return
		}

		if err := s.processMessage(client, msg); err != nil {
			if errors.Is(err, errClientQuit) {
				return
			}
			logger.Server.Warn("Error processing %s from client %s: %v", msg.Type, client.ID, err)
			client.Codec.Send(network.MessageTypeError, &network.ErrorPayload{
				Code:    400,
				Message: err.Error(),
			})
		}
	}
}

// processMessage processes a message from a client
func (s *Server) processMessage(client *Client, msg *network.Message) error {
	switch msg.Type {
	case network.MessageTypeLogin:
		var payload network.LoginPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return err
		}
		return s.handleLogin(client, payload)

	case network.MessageTypeQueue:
		var payload network.QueuePayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return err
		}
		if client.Username == "" {
			return fmt.Errorf("log in before queueing for a match")
		}
		if client.MatchID != "" {
			return fmt.Errorf("already in a match")
		}
		if payload.VersusBot {
			return s.sessions.CreateBotSession(client)
		}
		s.matchmaker.AddToWaitingPool(client)
		return nil

	case network.MessageTypeBuyUnit, network.MessageTypeBuyUpgrade:
		var payload network.BuyPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return err
		}
		return s.forwardShopCommand(client, shopCommand{kind: msg.Type, index: payload.Index})

	case network.MessageTypeShopDone:
		return s.forwardShopCommand(client, shopCommand{kind: network.MessageTypeShopDone})

	case network.MessageTypeQuit:
		return errClientQuit

	default:
		return fmt.Errorf("unsupported message type %q", msg.Type)
	}
}

// handleLogin authenticates the client and marks it active.
func (s *Server) handleLogin(client *Client, payload network.LoginPayload) error {
	player, err := s.authManager.Authenticate(payload.Username, payload.Password)
	if err != nil {
		return client.Codec.Send(network.MessageTypeAuthResult, &network.AuthResultPayload{
			Success: false,
			Message: err.Error(),
		})
	}

	if err := s.authManager.RegisterActiveUser(player.Username, client.ID); err != nil {
		return client.Codec.Send(network.MessageTypeAuthResult, &network.AuthResultPayload{
			Success: false,
			Message: err.Error(),
		})
	}

	client.Username = player.Username
	logger.Auth.Info("User %s authenticated as client %s", player.Username, client.ID)

	return client.Codec.Send(network.MessageTypeAuthResult, &network.AuthResultPayload{
		Success:  true,
		Message:  "Authentication successful",
		PlayerID: player.ID,
	})
}

// forwardShopCommand hands a shop decision to the client's running match
// session. Decisions outside a shop phase are rejected rather than queued
// indefinitely.
func (s *Server) forwardShopCommand(client *Client, cmd shopCommand) error {
	if client.MatchID == "" {
		return fmt.Errorf("no match in progress")
	}
	select {
	case client.shop <- cmd:
		return nil
	default:
		return fmt.Errorf("no shop is open")
	}
}
