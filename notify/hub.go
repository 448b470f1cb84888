// Package notify — общий канал уведомлений мастера. Ошибки справочных данных
// и отправки, смена шага и тип события доставляются клиентам сессии через
// WebSocket-комнаты, по одной комнате на черновик.
package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Notice — одно сообщение в канале сессии.
type Notice struct {
	Type    string      `json:"type"`
	DraftID string      `json:"draft_id"`
	Payload interface{} `json:"payload,omitempty"`
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	draftID string

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, draftID string) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 16),
		draftID: draftID,
	}
}

type Hub struct {
	register   chan *Client
	unregister chan *Client

	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.draftID]; !ok {
				h.rooms[client.draftID] = make(map[*Client]bool)
			}
			h.rooms[client.draftID][client] = true
			h.mu.Unlock()
			h.logger.Debug("notify client registered", slog.String("draft_id", client.draftID))

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.draftID]; ok {
				if _, okClient := room[client]; okClient {
					client.closeSend()
					delete(room, client)
					if len(room) == 0 {
						delete(h.rooms, client.draftID)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Debug("notify client unregistered", slog.String("draft_id", client.draftID))
		}
	}
}

// NotifyDraft broadcasts a notice to every client attached to the draft's
// room. Implements the service layer's Notifier.
func (h *Hub) NotifyDraft(draftID string, noticeType string, payload interface{}) {
	message, err := json.Marshal(Notice{
		Type:    noticeType,
		DraftID: draftID,
		Payload: payload,
	})
	if err != nil {
		h.logger.Error("failed to marshal notice",
			slog.String("draft_id", draftID),
			slog.String("type", noticeType),
			slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[draftID] {
		client.mu.Lock()
		if !client.closed {
			select {
			case client.send <- message:
			default:
				// Канал клиента переполнен, сообщение пропускается.
			}
		}
		client.mu.Unlock()
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.send)
		c.closed = true
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Клиенты ничего не присылают, цикл нужен для обработки close/pong.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Register attaches a client to its draft room and starts both pumps.
func (h *Hub) Register(client *Client) {
	h.register <- client
	go client.WritePump()
	go client.ReadPump()
}
