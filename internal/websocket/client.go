package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/campushub/campus-hub/internal/observability"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
)

type Client struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	UserName string
	Conn     *websocket.Conn
	Send     chan []byte
	Rooms    map[string]bool
	Hub      *Hub
	mu       sync.RWMutex
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, userName string) *Client {
	return &Client{
		ID:       uuid.New(),
		UserID:   userID,
		UserName: userName,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Rooms:    make(map[string]bool),
		Hub:      hub,
	}
}

// ReadPump consumes inbound frames until the connection drops, then
// unregisters the client. Chat messages are rebroadcast to the room without
// acknowledgment; there is no delivery guarantee and no retry.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		err := c.Conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}

		switch msg.Type {
		case TypePong:

		case TypeJoinRoom:
			if msg.Room != "" {
				c.Hub.JoinRoom(c, msg.Room)
				observability.WSEvent("join-room")
			}

		case TypeLeaveRoom:
			if msg.Room != "" {
				c.Hub.LeaveRoom(c, msg.Room)
				observability.WSEvent("leave-room")
			}

		case TypeChatMessage:
			observability.WSEvent("chat-message")
			if err := c.handleChatMessage(msg); err != nil {
				log.Printf("chat message from %s rejected: %v", c.UserName, err)
			}

		default:
			log.Printf("unknown message type: %s", msg.Type)
		}
	}
}

// handleChatMessage stamps the sender identity and hands the message to the
// hub. The sender name always comes from the authenticated session, never
// from the frame.
func (c *Client) handleChatMessage(msg Message) error {
	if msg.Room == "" || msg.Text == "" {
		return ErrInvalidMessage
	}
	if !c.IsInRoom(msg.Room) {
		return ErrNotInRoom
	}

	msg.User = c.UserName
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	return c.Hub.Broadcast(msg)
}

// WritePump flushes the send channel to the connection and keeps the
// connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub closed the channel
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) IsInRoom(room string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Rooms[room]
}
