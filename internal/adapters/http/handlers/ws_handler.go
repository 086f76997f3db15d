package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

// ConnectionServer owns upgraded websocket connections for one user.
// Implemented by realtime.Hub.
type ConnectionServer interface {
	Serve(conn *websocket.Conn, userID int64)
}

// WebSocketHandler upgrades authenticated requests into a live
// notification stream.
type WebSocketHandler struct {
	hub      ConnectionServer
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a WebSocketHandler serving connections on hub.
func NewWebSocketHandler(hub ConnectionServer) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// A non-zero handshake timeout also clears the server's write
			// deadline once the upgrade completes.
			HandshakeTimeout: 10 * time.Second,
			// Authentication is by bearer token, not cookies, so a
			// cross-origin page cannot ride on the user's session.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Stream handles GET /api/v1/ws. It blocks for the lifetime of the
// connection.
func (h *WebSocketHandler) Stream(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	// Upgrade writes its own error response on failure.
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "websocket upgrade failed",
			slog.Int64("user_id", p.ID),
			slog.Any("error", err),
		)
		return
	}

	h.hub.Serve(conn, p.ID)
}
