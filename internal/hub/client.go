package hub

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// PlayerSwitcher validates a requested player index.
type PlayerSwitcher interface {
	SetActiveByPlayerIndex(int) bool
}

// Client represents a connected WebSocket client.
type Client struct {
	hub         *Hub
	conn        *websocket.Conn
	send        chan []byte
	playerIndex int // 1-based player index this client is listening to
	log         *zap.Logger
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn, log *zap.Logger) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, 256),
		playerIndex: 1, // Default to player 1
		log:         log,
	}
}

// PlayerIndex returns the player index this client listens to.
func (c *Client) PlayerIndex() int {
	return c.playerIndex
}

// WritePump sends messages from the send channel to the WebSocket
// connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads messages from the WebSocket and handles client
// commands until the connection drops.
func (c *Client) ReadPump(switcher PlayerSwitcher) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			c.log.Warn("bad client message", zap.Error(err))
			continue
		}

		switch clientMsg.Type {
		case "select_player":
			if switcher.SetActiveByPlayerIndex(clientMsg.PlayerIndex) {
				c.playerIndex = clientMsg.PlayerIndex
				msg := NewPlayerSelectedMessage(clientMsg.PlayerIndex)
				data, _ := json.Marshal(msg)
				c.send <- data
				c.log.Info("client switched player", zap.Int("player", clientMsg.PlayerIndex))
			} else {
				c.log.Warn("invalid player index", zap.Int("player", clientMsg.PlayerIndex))
			}
		}
	}
}
