package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// TeamHandler handles HTTP requests for teams and memberships.
type TeamHandler struct {
	svc ports.TeamService
}

// NewTeamHandler creates a new TeamHandler with the given service port.
func NewTeamHandler(svc ports.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// ListTeams handles GET /api/v1/teams.
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListTeams(r.Context(), p, team.ResolveQuery(rawQuery(r)))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteList(w, r, dto.ToTeamList(res.Items), res.Meta)
}

// CreateTeam handles POST /api/v1/teams.
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req dto.CreateTeamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTeam(r.Context(), p, req.ToInput())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.ToTeamResponse(created))
}

// GetTeam handles GET /api/v1/teams/{id}.
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetTeam(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTeamResponse(t))
}

// ListMembers handles GET /api/v1/teams/{id}/members.
func (h *TeamHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.svc.ListMembers(r.Context(), p, id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToMembershipList(members))
}

// AddMember handles POST /api/v1/teams/{id}/members.
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.AddMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.svc.AddMember(r.Context(), p, id, req.UserID, req.MemberRole())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.ToMembershipResponse(m))
}

// RemoveMember handles DELETE /api/v1/teams/{id}/members/{userId}.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.svc.RemoveMember(r.Context(), p, id, userID); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
