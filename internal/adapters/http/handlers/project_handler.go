package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// ProjectHandler handles HTTP requests for projects and their derived
// views.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListProjects(r.Context(), p, project.ResolveQuery(rawQuery(r)))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteList(w, r, dto.ToProjectList(res.Items), res.Meta)
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), p, req.ToInput())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	proj, err := h.svc.GetProject(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToProjectResponse(proj))
}

// UpdateProject handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProject(r.Context(), p, id, req.ToInput())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToProjectResponse(updated))
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), p, id); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecomputeCompletion handles POST /api/v1/projects/{id}/completion.
func (h *ProjectHandler) RecomputeCompletion(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	proj, err := h.svc.UpdateProjectCompletion(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToProjectResponse(proj))
}

// GetKanbanBoard handles GET /api/v1/projects/{id}/kanban.
func (h *ProjectHandler) GetKanbanBoard(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	board, err := h.svc.GetKanbanBoard(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToBoardResponse(board))
}

// GetProjectStats handles GET /api/v1/projects/{id}/stats.
func (h *ProjectHandler) GetProjectStats(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.svc.GetProjectStats(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToProjectStatsResponse(stats))
}
