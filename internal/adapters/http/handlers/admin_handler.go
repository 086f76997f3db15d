package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// AdminHandler handles admin-only diagnostics.
type AdminHandler struct {
	svc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc ports.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GetSystemStats handles GET /api/v1/admin/stats.
func (h *AdminHandler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.GetSystemStats(r.Context(), p)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToSystemStatsResponse(stats))
}

// ListActivity handles GET /api/v1/admin/activity.
func (h *AdminHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListActivity(r.Context(), p, activity.ResolveQuery(rawQuery(r)))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteList(w, r, dto.ToActivityList(res.Items), res.Meta)
}
