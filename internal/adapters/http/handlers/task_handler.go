package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListTasks(r.Context(), p, task.ResolveQuery(rawQuery(r)))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteList(w, r, dto.ToTaskList(res.Items), res.Meta)
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), p, req.ToInput())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetTask(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), p, id, req.ToInput())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// UpdateTaskStatus handles PATCH /api/v1/tasks/{id}/status.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTaskStatus(r.Context(), p, id, task.Status(req.Status))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// AssignTask handles PATCH /api/v1/tasks/{id}/assign.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.AssignTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.AssignTask(r.Context(), p, id, req.AssigneeID)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), p, id); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkUpdateStatus handles PATCH /api/v1/tasks/bulk-status. Per-item
// failures are reported in the body; the request itself succeeds.
func (h *TaskHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req dto.BulkStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.BulkUpdateTaskStatus(r.Context(), p, req.ToUpdates())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToBulkUpdateResponse(res))
}
