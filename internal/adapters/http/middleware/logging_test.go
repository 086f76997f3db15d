package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/mocks"
)

func TestLogging_StartAndCompletionLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/projects", http.NoBody))

	out := buf.String()
	for _, want := range []string{"request started", "request completed", "method=POST", "path=/api/v1/projects", "status=201", "bytes=11", "duration="} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "user_id=", "anonymous requests carry no user")
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: "level=INFO"},
		{status: http.StatusNotFound, wantLevel: "level=WARN"},
		{status: http.StatusServiceUnavailable, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

			var completion string
			for line := range strings.Lines(buf.String()) {
				if strings.Contains(line, "request completed") {
					completion = line
				}
			}
			if !strings.Contains(completion, tt.wantLevel) {
				t.Errorf("completion line = %q, want %s", completion, tt.wantLevel)
			}
		})
	}
}

func TestLogging_IDsOnRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(testLogger(&buf))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("inside handler")
		}),
	)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	req.Header.Set("X-Correlation-ID", "corr-log")
	h.ServeHTTP(httptest.NewRecorder(), req)

	for line := range strings.Lines(buf.String()) {
		assert.Contains(t, line, "request_id=req-log")
		assert.Contains(t, line, "correlation_id=corr-log")
	}
	assert.Contains(t, buf.String(), "inside handler")
}

func TestLogging_RouteUserAndRedactedQuery(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthenticator(t)
	auth.EXPECT().Authenticate(mock.Anything, "jwt-secret-value").
		Return(domain.Principal{ID: 42, Username: "alice", Role: domain.RoleUser, IsActive: true}, nil)

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)), middleware.Authenticate(auth))
	r.Get("/api/v1/ws", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws?token=jwt-secret-value&since=5", http.NoBody)
	req.Header.Set("Upgrade", "websocket")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "route=/api/v1/ws")
	assert.Contains(t, out, "user_id=42")
	assert.Contains(t, out, "since=5")
	assert.NotContains(t, out, "jwt-secret-value")
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer top-secret")
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "request headers")
	assert.Contains(t, out, "Accept=application/json")
	assert.NotContains(t, out, "top-secret")
}
