package websocket

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when sending to a client that has shut down
var ErrClientClosed = errors.New("client is closed")

// ClientInterface is what the hub needs from a connection. *Client satisfies
// it; tests substitute doubles.
type ClientInterface interface {
	ID() string
	UserID() uuid.UUID
	Send(data []byte) error
	Close() error
}

// Hub fans events out to every open connection a user has. Safe for
// concurrent use.
type Hub struct {
	mu    sync.RWMutex
	users map[uuid.UUID]map[string]ClientInterface
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{users: make(map[uuid.UUID]map[string]ClientInterface)}
}

// Register adds a connection under its user
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userID := client.UserID()
	conns := h.users[userID]
	if conns == nil {
		conns = make(map[string]ClientInterface)
		h.users[userID] = conns
	}
	conns[client.ID()] = client

	log.Debug().
		Str("user_id", userID.String()).
		Str("client_id", client.ID()).
		Msg("WebSocket client registered")
}

// Unregister drops a connection; the user's entry disappears with its last
// connection. Unknown clients are ignored.
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userID := client.UserID()
	conns, ok := h.users[userID]
	if !ok {
		return
	}
	if _, ok := conns[client.ID()]; !ok {
		return
	}
	delete(conns, client.ID())
	if len(conns) == 0 {
		delete(h.users, userID)
	}

	log.Debug().
		Str("user_id", userID.String()).
		Str("client_id", client.ID()).
		Msg("WebSocket client unregistered")
}

// Broadcast serializes the event once and pushes it to each of the user's
// connections. Sends run outside the lock, each on its own goroutine, so a
// slow client cannot stall the hub.
func (h *Hub) Broadcast(userID uuid.UUID, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID.String()).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	targets := h.snapshot(userID)
	if len(targets) == 0 {
		return
	}

	for _, client := range targets {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Str("user_id", userID.String()).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Str("user_id", userID.String()).
		Str("event_type", event.Type).
		Int("client_count", len(targets)).
		Msg("Broadcast event")
}

// snapshot copies a user's connection list so sends happen lock-free
func (h *Hub) snapshot(userID uuid.UUID) []ClientInterface {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := h.users[userID]
	if len(conns) == 0 {
		return nil
	}
	out := make([]ClientInterface, 0, len(conns))
	for _, client := range conns {
		out = append(out, client)
	}
	return out
}

// ClientCount reports how many connections a user has open
func (h *Hub) ClientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

// TotalClientCount reports open connections across every user
func (h *Hub) TotalClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, conns := range h.users {
		total += len(conns)
	}
	return total
}
