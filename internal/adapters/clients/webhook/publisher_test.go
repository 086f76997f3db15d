package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/httpclient"
)

func newTestPublisher(t *testing.T, baseURL string, opts ...Option) *Publisher {
	t.Helper()

	cfg := &config.WebhookConfig{
		Enabled: true,
		BaseURL: baseURL,
		Path:    "/hooks/tracker",
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	return NewPublisher(httpclient.New(cfg, "webhook-test", nil, logger), cfg.Path, logger, opts...)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	var got Payload
	var gotHeaders http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/hooks/tracker" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	pub := newTestPublisher(t, ts.URL)
	ev := domain.NewEvent(domain.EventTaskAssigned, 3, domain.EntityTask, 11, map[string]any{"assigneeId": 4})

	require.NoError(t, pub.Publish(context.Background(), ev))

	assert.Equal(t, "task.assigned", got.EventType)
	assert.Equal(t, int64(3), got.ActorID)
	assert.Equal(t, "task", got.EntityType)
	assert.Equal(t, int64(11), got.EntityID)
	assert.InDelta(t, 4, got.Details["assigneeId"], 0)
	assert.NotEmpty(t, got.DeliveryID)
	assert.Equal(t, got.DeliveryID, gotHeaders.Get(HeaderDeliveryID))
	assert.Equal(t, "task.assigned", gotHeaders.Get(HeaderEventType))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Empty(t, gotHeaders.Get(HeaderSignature), "unsigned without a secret")
}

func TestPublisher_PublishSigned(t *testing.T) {
	t.Parallel()

	var body []byte
	var signature string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		signature = r.Header.Get(HeaderSignature)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	pub := newTestPublisher(t, ts.URL, WithSecret("s3cret"))
	require.NoError(t, pub.Publish(context.Background(), domain.NewEvent(domain.EventProjectCreated, 1, domain.EntityProject, 2, nil)))

	assert.Equal(t, Sign("s3cret", body), signature)
	assert.True(t, strings.HasPrefix(signature, "sha256="))
	assert.NotEqual(t, Sign("other", body), signature)
}

func TestPublisher_PublishRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "receiver rejects payload", status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "receiver down", status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
		{name: "unknown endpoint", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			err := newTestPublisher(t, ts.URL).Publish(context.Background(), domain.NewEvent(domain.EventTaskCreated, 1, domain.EntityTask, 1, nil))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Publish() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublisher_HealthCheck(t *testing.T) {
	t.Parallel()

	pub := newTestPublisher(t, "http://127.0.0.1:0")
	assert.Equal(t, "webhook-test", pub.Name())
	assert.NoError(t, pub.HealthCheck(context.Background()))
}
