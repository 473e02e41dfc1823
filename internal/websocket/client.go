package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// writeTimeout bounds every write to the peer
	writeTimeout = 10 * time.Second

	// pongTimeout is how long the connection may stay silent before the
	// read side gives up
	pongTimeout = 60 * time.Second

	// pingInterval must stay below pongTimeout or healthy peers get dropped
	pingInterval = pongTimeout * 9 / 10

	// readLimit caps inbound frames; clients only listen
	readLimit = 512
)

// Client is one WebSocket connection owned by a single user
type Client struct {
	id     string
	userID uuid.UUID
	conn   *websocket.Conn
	hub    *Hub

	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewClient wraps an upgraded connection for the hub
func NewClient(conn *websocket.Conn, userID uuid.UUID, hub *Hub) *Client {
	return &Client{
		id:     uuid.New().String(),
		userID: userID,
		conn:   conn,
		hub:    hub,
		send:   make(chan []byte, 256),
		done:   make(chan struct{}),
	}
}

// ID returns the connection's unique identifier
func (c *Client) ID() string {
	return c.id
}

// UserID returns the ID of the user the connection belongs to
func (c *Client) UserID() uuid.UUID {
	return c.userID
}

// Send queues a message for delivery. It never blocks: a closed client or a
// full buffer (a peer that stopped draining) yields ErrClientClosed.
func (c *Client) Send(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		return ErrClientClosed
	}
}

// Close tears the connection down. Safe to call from any goroutine, any
// number of times.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// IsClosed reports whether Close has run
func (c *Client) IsClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// ReadPump drains inbound frames so pongs are processed and unregisters the
// client when the connection drops. Run it in its own goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Str("user_id", c.userID.String()).
					Msg("WebSocket closed unexpectedly")
			}
			return
		}
	}
}

// WritePump delivers queued messages and keeps the connection alive with
// pings. Run it in its own goroutine; it owns all writes to the socket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Str("user_id", c.userID.String()).
					Msg("WebSocket write failed")
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
