package client

import (
	"fmt"
	"net"
	"sync"

	"github.com/NP-Dat/battle-arena/internal/network"
)

// Client represents the arena game client
type Client struct {
	Host            string
	Port            int
	Username        string
	conn            net.Conn
	codec           *network.Codec
	messageHandlers map[network.MessageType]MessageHandler
	handlersMutex   sync.RWMutex
	connected       bool
	disconnectChan  chan struct{}
	disconnectOnce  sync.Once

	// shopPhase is the currently open shop phase, or "" outside shop
	// phases. It decides whether "buy" sends buy_unit or buy_upgrade.
	shopPhase  network.ShopPhase
	shopMutex  sync.Mutex
}

// MessageHandler is a function that handles a specific type of message
type MessageHandler func(msg *network.Message) error

// NewClient creates a new arena client
func NewClient(host string, port int) *Client {
	return &Client{
		Host:            host,
		Port:            port,
		messageHandlers: make(map[network.MessageType]MessageHandler),
		disconnectChan:  make(chan struct{}),
	}
}

// Connect connects to the server
func (c *Client) Connect() error {
	if c.connected {
		return fmt.Errorf("already connected to server")
	}

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	var err error
	c.conn, err = net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server at %s: %w", addr, err)
	}

	c.codec = network.NewCodec(c.conn)
	c.connected = true

	go c.receiveMessages()

	return nil
}

// Disconnect disconnects from the server
func (c *Client) Disconnect() error {
	if !c.connected {
		return nil
	}

	if c.codec != nil {
		_ = c.codec.Send(network.MessageTypeQuit, &network.QuitPayload{
			Reason: "Client disconnecting",
		})
	}

	err := c.conn.Close()
	c.connected = false
	c.notifyDisconnect()

	return err
}

// RegisterHandler registers a handler for a specific message type
func (c *Client) RegisterHandler(msgType network.MessageType, handler MessageHandler) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	c.messageHandlers[msgType] = handler
}

// Send sends a message to the server
func (c *Client) Send(msgType network.MessageType, payload interface{}) error {
	if !c.connected {
		return fmt.Errorf("not connected to server")
	}

	return c.codec.Send(msgType, payload)
}

// IsConnected returns whether the client is connected to the server
func (c *Client) IsConnected() bool {
	return c.connected
}

// WaitForDisconnect blocks until the client is disconnected
func (c *Client) WaitForDisconnect() {
	<-c.disconnectChan
}

// Login attempts to log in with the provided username and password
func (c *Client) Login(username, password string) error {
	if !c.connected {
		return fmt.Errorf("not connected to server")
	}

	c.Username = username

	return c.Send(network.MessageTypeLogin, &network.LoginPayload{
		Username: username,
		Password: password,
	})
}

// Queue requests a match, either against the next queued player or against
// the server bot.
func (c *Client) Queue(versusBot bool) error {
	if c.Username == "" {
		return fmt.Errorf("must be logged in to queue for a match")
	}
	return c.Send(network.MessageTypeQueue, &network.QueuePayload{VersusBot: versusBot})
}

// Buy sends a purchase for the current shop phase. The message type must
// match the open phase (buy_unit for the roster shop, buy_upgrade for the
// upgrade shop); index is 1-based as shown in the menu.
func (c *Client) Buy(msgType network.MessageType, index int) error {
	return c.Send(msgType, &network.BuyPayload{Index: index - 1})
}

// ShopDone closes the current shop phase.
func (c *Client) ShopDone() error {
	return c.Send(network.MessageTypeShopDone, struct{}{})
}

// receiveMessages continuously receives and processes messages from the server
func (c *Client) receiveMessages() {
	defer func() {
		c.connected = false
		c.notifyDisconnect()
	}()

	for {
		msg, err := c.codec.Receive()
		if err != nil {
			// Connection closed or broken
			return
		}

		c.processMessage(msg)
	}
}

func (c *Client) notifyDisconnect() {
	c.disconnectOnce.Do(func() { close(c.disconnectChan) })
}

// processMessage dispatches a message to its registered handler.
func (c *Client) processMessage(msg *network.Message) {
	c.handlersMutex.RLock()
	handler, exists := c.messageHandlers[msg.Type]
	c.handlersMutex.RUnlock()

	if exists {
		if err := handler(msg); err != nil {
			fmt.Printf("Error handling message of type %s: %v\n", msg.Type, err)
		}
		return
	}

	if msg.Type == network.MessageTypeError {
		var errorPayload network.ErrorPayload
		if err := network.ParsePayload(msg, &errorPayload); err == nil {
			fmt.Printf("Error from server: [%d] %s\n", errorPayload.Code, errorPayload.Message)
			return
		}
	}
	fmt.Printf("Received message of type %s with no handler\n", msg.Type)
}
