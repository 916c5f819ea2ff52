package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	TypePing MessageType = "ping"
	TypePong MessageType = "pong"

	TypeJoinRoom  MessageType = "join-room"
	TypeLeaveRoom MessageType = "leave-room"

	TypeChatMessage MessageType = "chat-message"
)

// GlobalRoom is the single campus-wide channel.
const GlobalRoom = "global"

// Message is the wire shape for both directions: room, sender display name,
// text and creation time. Delivery is fire-and-forget; messages are never
// persisted.
type Message struct {
	Type      MessageType `json:"type"`
	Room      string      `json:"room,omitempty"`
	User      string      `json:"user,omitempty"`
	Text      string      `json:"text,omitempty"`
	CreatedAt time.Time   `json:"createdAt,omitempty"`
}

type Hub struct {
	clients map[uuid.UUID]*Client

	// clients subscribed per room name
	rooms map[string]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *RoomMessage

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

type RoomMessage struct {
	Room    string
	Payload []byte
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		rooms:      make(map[string]map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *RoomMessage),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run drives registration and broadcast until Stop is called.
func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.SendToRoom(message.Room, message.Payload)

		case <-ticker.C:
			h.ping()
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
	h.clients = make(map[uuid.UUID]*Client)
	h.rooms = make(map[string]map[uuid.UUID]*Client)
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	log.Printf("client registered: %s (user %s)", client.ID, client.UserName)
}

// unregisterClient drops the client from every room and closes its send
// channel. Nothing is delivered to a client after this point.
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	for room := range client.Rooms {
		h.removeFromRoomUnsafe(client, room)
	}

	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("client unregistered: %s (user %s)", client.ID, client.UserName)
}

// JoinRoom subscribes the client to a named room, creating it on first join.
func (h *Hub) JoinRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[uuid.UUID]*Client)
	}

	h.rooms[room][client.ID] = client
	client.mu.Lock()
	client.Rooms[room] = true
	client.mu.Unlock()
}

func (h *Hub) LeaveRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoomUnsafe(client, room)
}

func (h *Hub) removeFromRoomUnsafe(client *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		if _, ok := members[client.ID]; ok {
			delete(members, client.ID)
			client.mu.Lock()
			delete(client.Rooms, room)
			client.mu.Unlock()

			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

// SendToRoom fans a payload out to every subscriber, sender included. A
// client with a full queue is skipped rather than blocking the hub.
func (h *Hub) SendToRoom(room string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if members, ok := h.rooms[room]; ok {
		for _, client := range members {
			select {
			case client.Send <- payload:
			default:
				log.Printf("client %s send channel full, dropping", client.ID)
			}
		}
	}
}

// Broadcast hands a chat message to the hub's run loop.
func (h *Hub) Broadcast(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	h.broadcast <- &RoomMessage{Room: msg.Room, Payload: payload}
	return nil
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Message{Type: TypePing, CreatedAt: time.Now()}
	if data, err := json.Marshal(msg); err == nil {
		for _, client := range h.clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// RoomUsers returns the display names currently subscribed to a room.
func (h *Hub) RoomUsers(room string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]bool)
	users := make([]string, 0)
	if members, ok := h.rooms[room]; ok {
		for _, client := range members {
			if !seen[client.UserName] {
				seen[client.UserName] = true
				users = append(users, client.UserName)
			}
		}
	}
	return users
}
