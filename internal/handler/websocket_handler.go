package handler

import (
	"net/http"

	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/websocket"
)

// WebSocketHandler upgrades authenticated connections and hands them to the
// event hub
type WebSocketHandler struct {
	hub      *websocket.Hub
	verifier middleware.TokenVerifier
	origins  map[string]bool
	upgrader ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, verifier middleware.TokenVerifier, allowedOrigins []string) *WebSocketHandler {
	h := &WebSocketHandler{
		hub:      hub,
		verifier: verifier,
		origins:  make(map[string]bool, len(allowedOrigins)),
	}
	for _, origin := range allowedOrigins {
		h.origins[origin] = true
	}
	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin admits browser connections only from configured origins.
// Non-browser clients send no Origin header and pass.
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.origins[origin] {
		return true
	}
	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS upgrades GET /ws requests. Browsers cannot set an Authorization
// header on the upgrade request, so the access token rides in the token
// query parameter instead.
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		log.Debug().Msg("WebSocket connection rejected: missing token")
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	userID, err := h.verifier.VerifyToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("WebSocket connection rejected: invalid token")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, userID, h.hub)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()

	log.Info().
		Str("user_id", userID.String()).
		Str("client_id", client.ID()).
		Msg("WebSocket client connected")

	return nil
}
