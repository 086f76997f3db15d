// Package realtime pushes notifications to users' open websocket
// connections. A user may hold any number of connections; each receives
// every notification addressed to that user.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.Notifier = (*Hub)(nil)

// MessageTypeNotification tags pushed notification frames.
const MessageTypeNotification = "notification"

// Client is one live connection. Send reports false when the write failed
// and the connection should be dropped.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Message is the JSON frame written to clients.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks live connections per user.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[Client]struct{}
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithMetrics reports the open connection count on m.RealtimeConnections.
func WithMetrics(m *telemetry.Metrics) HubOption {
	return func(h *Hub) { h.metrics = m }
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger, opts ...HubOption) *Hub {
	h := &Hub{
		clients: make(map[int64]map[Client]struct{}),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) track(delta int) {
	if h.metrics == nil || delta == 0 {
		return
	}
	h.metrics.RealtimeConnections.Add(context.Background(), int64(delta))
}

// Register adds a client under userID.
func (h *Hub) Register(userID int64, c Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; !ok {
		h.clients[userID] = make(map[Client]struct{})
	}
	if _, dup := h.clients[userID][c]; !dup {
		h.clients[userID][c] = struct{}{}
		h.track(1)
	}
}

// Unregister removes a client. It reports whether the client was registered.
func (h *Hub) Unregister(userID int64, c Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.clients[userID]
	if !ok {
		return false
	}
	if _, ok := clients[c]; !ok {
		return false
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.clients, userID)
	}
	h.track(-1)
	return true
}

// Connections returns the number of live connections held by userID.
func (h *Hub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Push implements ports.Notifier. Clients whose write fails are dropped.
func (h *Hub) Push(ctx context.Context, n *notification.Notification) {
	h.mu.RLock()
	targets := make([]Client, 0, len(h.clients[n.UserID]))
	for c := range h.clients[n.UserID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	msg, err := json.Marshal(Message{Type: MessageTypeNotification, Data: dto.ToNotificationResponse(n)})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode notification",
			slog.String("operation", "Hub.Push"),
			slog.Int64("notification_id", n.ID),
			slog.Any("error", err),
		)
		return
	}

	for _, c := range targets {
		if c.Send(msg) {
			continue
		}
		if h.Unregister(n.UserID, c) {
			c.Close()
		}
		h.logger.WarnContext(ctx, "dropped websocket client after failed write",
			slog.Int64("user_id", n.UserID),
		)
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.clients
	h.clients = make(map[int64]map[Client]struct{})
	h.mu.Unlock()

	closed := 0
	for _, clients := range all {
		for c := range clients {
			c.Close()
			closed++
		}
	}
	h.track(-closed)
}
