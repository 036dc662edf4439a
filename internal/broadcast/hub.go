// Package broadcast is the game-room relay: a websocket hub that fans
// session state changes out to subscribed clients. Delivery is
// best-effort; the settlement core never depends on it.
package broadcast

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"casino-ledger/internal/model"
)

// Broadcaster is what the session controller publishes through.
type Broadcaster interface {
	SessionStarted(sess *model.GameSession)
	SessionSettled(sess *model.GameSession)
}

type Message struct {
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
	Data any    `json:"data,omitempty"`
}

type client struct {
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]bool
}

type Hub struct {
	logger     zerolog.Logger
	upgrader   websocket.Upgrader
	mu         sync.RWMutex
	clients    map[*client]bool
	rooms      map[string]map[*client]bool
	broadcasts chan Message
	done       chan struct{}
}

var _ Broadcaster = (*Hub)(nil)

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:    make(map[*client]bool),
		rooms:      make(map[string]map[*client]bool),
		broadcasts: make(chan Message, 100),
		done:       make(chan struct{}),
	}
}

// Run pumps queued broadcasts to room subscribers until Stop.
func (h *Hub) Run() {
	for {
		select {
		case msg := <-h.broadcasts:
			h.deliver(msg)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
	h.mu.RLock()
	defer h.mu.RUnlock()
	// Closing the connections unwinds each client's read pump, which
	// performs the actual cleanup in drop.
	for c := range h.clients {
		_ = c.conn.Close()
	}
}

func (h *Hub) SessionStarted(sess *model.GameSession) {
	h.publish(Message{
		Type: "SESSION_STARTED",
		Room: sess.SessionID,
		Data: map[string]any{
			"session_id": sess.SessionID,
			"game_type":  sess.GameType,
			"bet_amount": sess.BetAmount.StringFixed(2),
			"is_demo":    sess.IsDemo,
		},
	})
}

func (h *Hub) SessionSettled(sess *model.GameSession) {
	h.publish(Message{
		Type: "SESSION_SETTLED",
		Room: sess.SessionID,
		Data: map[string]any{
			"session_id": sess.SessionID,
			"state":      sess.State,
			"win_amount": sess.WinAmount.StringFixed(2),
		},
	})
}

// publish never blocks the caller; a full queue drops the event.
func (h *Hub) publish(msg Message) {
	select {
	case h.broadcasts <- msg:
	default:
		h.logger.Warn().Str("type", msg.Type).Str("room", msg.Room).Msg("broadcast queue full, event dropped")
	}
}

func (h *Hub) deliver(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	subscribers := make([]*client, 0, len(h.rooms[msg.Room]))
	for c := range h.rooms[msg.Room] {
		subscribers = append(subscribers, c)
	}
	h.mu.RUnlock()

	for _, c := range subscribers {
		select {
		case c.send <- payload:
		default:
			// Slow consumer, skip rather than block the hub.
		}
	}
}

// Handle upgrades an HTTP request and serves the subscription protocol:
// SUBSCRIBE/UNSUBSCRIBE messages with a room id, PING for liveness.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{
		conn:  conn,
		send:  make(chan []byte, 16),
		rooms: make(map[string]bool),
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer h.drop(c)

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug().Err(err).Msg("websocket read error")
			}
			return
		}

		switch msg.Type {
		case "SUBSCRIBE":
			h.subscribe(c, msg.Room)
		case "UNSUBSCRIBE":
			h.unsubscribe(c, msg.Room)
		case "PING":
			pong, _ := json.Marshal(Message{Type: "PONG"})
			select {
			case c.send <- pong:
			default:
			}
		}
	}
}

func (h *Hub) writePump(c *client) {
	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (h *Hub) subscribe(c *client, room string) {
	if room == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*client]bool)
	}
	h.rooms[room][c] = true
	c.rooms[room] = true
}

func (h *Hub) unsubscribe(c *client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs := h.rooms[room]; subs != nil {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		for room := range c.rooms {
			if subs := h.rooms[room]; subs != nil {
				delete(subs, c)
				if len(subs) == 0 {
					delete(h.rooms, room)
				}
			}
		}
		close(c.send)
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// NopBroadcaster is used in tests.
type NopBroadcaster struct{}

func (NopBroadcaster) SessionStarted(*model.GameSession) {}
func (NopBroadcaster) SessionSettled(*model.GameSession) {}
