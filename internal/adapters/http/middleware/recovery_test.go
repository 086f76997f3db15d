package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantEnv    bool
	}{
		{
			name:       "no panic",
			handler:    func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "string panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic("task store exploded") },
			wantStatus: http.StatusInternalServerError,
			wantEnv:    true,
		},
		{
			name:       "error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(errors.New("nil project")) },
			wantStatus: http.StatusInternalServerError,
			wantEnv:    true,
		},
		{
			name: "response already started",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Recovery(discardLogger())(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantEnv {
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
			assert.NotContains(t, body.Error.Message, "exploded", "panic value must not leak")
			assert.NotContains(t, body.Error.Message, "nil project", "panic value must not leak")
		})
	}
}

func TestRecovery_LogsRouteAndStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Recovery(testLogger(&buf)))
	r.Get("/api/v1/tasks/{id}", func(http.ResponseWriter, *http.Request) { panic("bad task") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/9", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "bad task")
	assert.Contains(t, out, "route=/api/v1/tasks/{id}")
	assert.Contains(t, out, "goroutine")
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}
