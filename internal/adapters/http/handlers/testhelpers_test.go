package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

var (
	alice = domain.Principal{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser, IsActive: true}
	admin = domain.Principal{ID: 99, Username: "root", Email: "root@example.com", Role: domain.RoleAdmin, IsActive: true}
)

// envelope mirrors the wire form of every response with a typed payload.
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
		Field   string            `json:"field"`
	} `json:"error"`
	Meta struct {
		Timestamp  string `json:"timestamp"`
		RequestID  string `json:"requestId"`
		Pagination *struct {
			Page    int   `json:"page"`
			Limit   int   `json:"limit"`
			Total   int64 `json:"total"`
			HasNext bool  `json:"hasNext"`
		} `json:"pagination"`
	} `json:"meta"`
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request authenticated as p with optional chi params.
func newRequest(t *testing.T, method, target string, body any, p *domain.Principal, params map[string]string) *http.Request {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		buf = jsonBody(t, body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, buf)
	if p != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *p))
	}
	if params != nil {
		req = withChiParams(req, params)
	}
	return req
}

func validProject() project.Project {
	return project.Project{
		ID:         1,
		Name:       "Alpha",
		Status:     project.StatusActive,
		Priority:   domain.PriorityMedium,
		OwnerID:    alice.ID,
		Visibility: project.VisibilityPrivate,
		CreatedAt:  testTime,
		UpdatedAt:  testTime,
	}
}

func validTask() task.Task {
	projectID := int64(1)
	return task.Task{
		ID:          7,
		Title:       "Write docs",
		Status:      task.StatusTodo,
		Priority:    domain.PriorityMedium,
		ProjectID:   &projectID,
		Tags:        []string{},
		CreatedByID: alice.ID,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want domain.Code) {
	t.Helper()
	env := decodeJSON[envelope[json.RawMessage]](t, rec)
	if env.Success {
		t.Fatalf("success = true, want false")
	}
	if env.Error == nil || env.Error.Code != string(want) {
		t.Fatalf("error = %+v, want code %s", env.Error, want)
	}
}
