// Package realtime pushes filter updates to connected browsers over WebSocket.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// FiltersRoom is the room every filter form subscribes to.
const FiltersRoom = "filters"

// Типы сообщений, отправляемых клиентам.
const (
	MessageFilterOptionsUpdated  = "FILTER_OPTIONS_UPDATED"
	MessageFilterSchemaPublished = "FILTER_SCHEMA_PUBLISHED"
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

type Client struct {
	ID   string
	Room string
	Send chan []byte

	hub    *Hub
	conn   *websocket.Conn
	mu     sync.Mutex
	closed bool
}

// NewClient creates a client for room. conn may be nil for clients that only consume Send.
func NewClient(hub *Hub, conn *websocket.Conn, room string) *Client {
	return &Client{
		ID:   uuid.NewString(),
		Room: room,
		Send: make(chan []byte, sendBufferSize),
		hub:  hub,
		conn: conn,
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.Send)
		c.closed = true
	}
}

// trySend queues message without blocking. It reports false when the client is closed or
// its buffer is full.
func (c *Client) trySend(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run processes registrations until ctx is done. On exit every client channel is closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			total := len(h.rooms[client.Room])
			h.mu.Unlock()
			h.logger.Info("websocket client registered",
				slog.String("client_id", client.ID), slog.String("room", client.Room), slog.Int("clients", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.Room]; ok {
				if _, ok := clients[client]; ok {
					client.close()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.Room)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Info("websocket client unregistered",
				slog.String("client_id", client.ID), slog.String("room", client.Room))
		}
	}
}

// Register blocks until the hub accepts client or ctx is done.
func (h *Hub) Register(ctx context.Context, client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-ctx.Done():
		return false
	}
}

func (h *Hub) Unregister(ctx context.Context, client *Client) {
	select {
	case h.unregister <- client:
	case <-ctx.Done():
	}
}

// RoomSize returns the number of clients currently in room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// BroadcastToRoom отправляет сообщение всем клиентам комнаты. Slow clients are skipped.
func (h *Hub) BroadcastToRoom(roomID string, message interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomID]
	if !ok {
		return
	}

	payload, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal websocket message", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	for client := range clients {
		if !client.trySend(payload) {
			h.logger.Warn("websocket client send buffer full or closed, skipping",
				slog.String("client_id", client.ID), slog.String("room", roomID))
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, clients := range h.rooms {
		for client := range clients {
			client.close()
		}
		delete(h.rooms, room)
	}
}
