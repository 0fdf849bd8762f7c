package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Envelope is the wire format pushed to WebSocket clients.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Hub tracks connected WebSocket clients keyed by user so pushes can target a
// single user's open connections. A user may hold several connections at once
// (multiple tabs or devices).
type Hub struct {
	mu     sync.RWMutex
	byUser map[string]map[*Client]struct{}
	log    zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		byUser: make(map[string]map[*Client]struct{}),
		log:    log,
	}
}

// Register adds a client under its user ID.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.byUser[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.byUser[c.userID] = set
	}
	set[c] = struct{}{}
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.byUser[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.byUser, c.userID)
	}
}

// SendToUser pushes an event to every connection the user currently holds.
// Offline users are skipped; the persisted notification row covers them.
func (h *Hub) SendToUser(userID, event string, payload any) {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("marshal push")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.byUser[userID] {
		c.trySend(data)
	}
}

// Broadcast pushes an event to every connected client.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("marshal broadcast")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, set := range h.byUser {
		for c := range set {
			c.trySend(data)
		}
	}
}

// ConnectionCount returns the number of open connections across all users.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.byUser {
		n += len(set)
	}
	return n
}
