package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/kanban"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	"github.com/jsamuelsen11/project-tracker/mocks"
)

func newProjectHandler(t *testing.T) (*handlers.ProjectHandler, *mocks.MockProjectService) {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	return handlers.NewProjectHandler(svc), svc
}

func TestListProjects_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	want := project.ResolveQuery(query.Raw{"status": {"active"}})
	svc.EXPECT().ListProjects(mock.Anything, alice, want).
		Return(query.NewResult([]project.Project{validProject()}, want.Page, 1), nil)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, newRequest(t, http.MethodGet, "/api/v1/projects?status=active", nil, &alice, nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[[]dto.ProjectResponse]](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Alpha", resp.Data[0].Name)
	require.NotNil(t, resp.Meta.Pagination)
	assert.Equal(t, int64(1), resp.Meta.Pagination.Total)
	assert.False(t, resp.Meta.Pagination.HasNext)
}

func TestCreateProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     any
		svcErr   error
		callSvc  bool
		wantCode int
	}{
		{name: "created", body: map[string]any{"name": "Alpha"}, callSvc: true, wantCode: http.StatusCreated},
		{name: "blank name", body: map[string]any{"name": "  "}, wantCode: http.StatusBadRequest},
		{name: "bad visibility", body: map[string]any{"name": "Alpha", "visibility": "secret"}, wantCode: http.StatusBadRequest},
		{name: "bad date", body: map[string]any{"name": "Alpha", "startDate": "tomorrow"}, wantCode: http.StatusBadRequest},
		{
			name:     "team not led by caller",
			body:     map[string]any{"name": "Alpha", "teamId": 3},
			svcErr:   fmt.Errorf("team 3: create project denied: %w", domain.ErrForbidden),
			callSvc:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)
			if tt.callSvc {
				if tt.svcErr != nil {
					svc.EXPECT().CreateProject(mock.Anything, alice, mock.Anything).Return(nil, tt.svcErr)
				} else {
					p := validProject()
					svc.EXPECT().CreateProject(mock.Anything, alice, mock.MatchedBy(func(in project.CreateInput) bool {
						return in.Name == "Alpha"
					})).Return(&p, nil)
				}
			}

			rec := httptest.NewRecorder()
			h.CreateProject(rec, newRequest(t, http.MethodPost, "/api/v1/projects", tt.body, &alice, nil))

			requireStatus(t, rec, tt.wantCode)
		})
	}
}

func TestGetProject_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)
	svc.EXPECT().GetProject(mock.Anything, alice, int64(5)).Return(nil, fmt.Errorf("project 5: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	h.GetProject(rec, newRequest(t, http.MethodGet, "/api/v1/projects/5", nil, &alice, map[string]string{"id": "5"}))

	requireStatus(t, rec, http.StatusNotFound)
	requireErrorCode(t, rec, domain.CodeNotFound)
}

func TestUpdateProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	updated := validProject()
	updated.Status = project.StatusOnHold
	svc.EXPECT().UpdateProject(mock.Anything, alice, int64(1), mock.MatchedBy(func(in project.UpdateInput) bool {
		return in.Status != nil && *in.Status == project.StatusOnHold && in.Name == nil
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	h.UpdateProject(rec, newRequest(t, http.MethodPatch, "/api/v1/projects/1",
		map[string]string{"status": "on_hold"}, &alice, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[dto.ProjectResponse]](t, rec)
	assert.Equal(t, "on_hold", resp.Data.Status)
}

func TestDeleteProject_Forbidden(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)
	svc.EXPECT().DeleteProject(mock.Anything, alice, int64(1)).Return(fmt.Errorf("project 1: delete denied: %w", domain.ErrForbidden))

	rec := httptest.NewRecorder()
	h.DeleteProject(rec, newRequest(t, http.MethodDelete, "/api/v1/projects/1", nil, &alice, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusForbidden)
	requireErrorCode(t, rec, domain.CodeForbidden)
}

func TestRecomputeCompletion(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	p := validProject()
	p.CompletionPercentage = 50
	svc.EXPECT().UpdateProjectCompletion(mock.Anything, alice, int64(1)).Return(&p, nil)

	rec := httptest.NewRecorder()
	h.RecomputeCompletion(rec, newRequest(t, http.MethodPost, "/api/v1/projects/1/completion", nil, &alice, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[dto.ProjectResponse]](t, rec)
	assert.Equal(t, 50, resp.Data.CompletionPercentage)
}

func TestGetKanbanBoard(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	tk := validTask()
	board := kanban.Assemble(validProject(), []task.Task{tk})
	svc.EXPECT().GetKanbanBoard(mock.Anything, alice, int64(1)).Return(&board, nil)

	rec := httptest.NewRecorder()
	h.GetKanbanBoard(rec, newRequest(t, http.MethodGet, "/api/v1/projects/1/kanban", nil, &alice, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[dto.BoardResponse]](t, rec)
	require.Len(t, resp.Data.Columns, len(task.Statuses))
	ids := make([]string, len(resp.Data.Columns))
	for i, c := range resp.Data.Columns {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"todo", "in_progress", "review", "completed", "cancelled"}, ids)
	assert.Len(t, resp.Data.Columns[0].Tasks, 1)
	assert.Equal(t, 1, resp.Data.TotalTasks)
}

func TestGetProjectStats_ZeroFilled(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().GetProjectStats(mock.Anything, alice, int64(1)).Return(&ports.ProjectStats{
		ProjectID:            1,
		TotalTasks:           2,
		ByStatus:             map[task.Status]int64{task.StatusCompleted: 1, task.StatusTodo: 1},
		ByPriority:           map[domain.Priority]int64{domain.PriorityMedium: 2},
		CompletionPercentage: 50,
	}, nil)

	rec := httptest.NewRecorder()
	h.GetProjectStats(rec, newRequest(t, http.MethodGet, "/api/v1/projects/1/stats", nil, &alice, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[dto.ProjectStatsResponse]](t, rec)
	assert.Len(t, resp.Data.ByStatus, len(task.Statuses))
	assert.Equal(t, int64(0), resp.Data.ByStatus["review"])
	assert.Equal(t, int64(1), resp.Data.ByStatus["completed"])
	assert.Equal(t, 50, resp.Data.CompletionPercentage)
}
