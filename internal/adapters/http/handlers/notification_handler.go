package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// NotificationHandler handles the caller's notification inbox.
type NotificationHandler struct {
	svc ports.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// ListNotifications handles GET /api/v1/notifications.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListNotifications(r.Context(), p, notification.ResolveQuery(p.ID, rawQuery(r)))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteList(w, r, dto.ToNotificationList(res.Items), res.Meta)
}

// UnreadCount handles GET /api/v1/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	n, err := h.svc.UnreadCount(r.Context(), p)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.CountResponse{Count: n})
}

// MarkRead handles PATCH /api/v1/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	n, err := h.svc.MarkNotificationRead(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToNotificationResponse(n))
}

// MarkAllRead handles PATCH /api/v1/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	n, err := h.svc.MarkAllRead(r.Context(), p)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.CountResponse{Count: n})
}
