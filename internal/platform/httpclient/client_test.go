package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-tracker/internal/platform/requestid"
)

func receiverConfig(baseURL string) *config.WebhookConfig {
	return &config.WebhookConfig{
		Enabled: true,
		BaseURL: baseURL,
		Path:    "/hooks",
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(cfg *config.WebhookConfig) *httpclient.Client {
	return httpclient.New(cfg, "webhook", nil, slog.New(slog.DiscardHandler))
}

func post(body string) httpclient.Request {
	return httpclient.Request{Method: http.MethodPost, Path: "/hooks", Body: []byte(body)}
}

func TestSend_DeliversBodyAndHeaders(t *testing.T) {
	t.Parallel()

	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got, gotBody = r.Clone(context.Background()), string(b)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	t.Cleanup(srv.Close)

	ctx := requestid.WithID(context.Background(), "req-1")
	ctx = requestid.WithCorrelation(ctx, "corr-1")
	req := post(`{"eventType":"task.created"}`)
	req.Header = http.Header{"X-Webhook-Event": {"task.created"}}

	resp, err := newClient(receiverConfig(srv.URL)).Send(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.Equal(t, "queued", string(resp.Body))
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/hooks", got.URL.Path)
	assert.JSONEq(t, `{"eventType":"task.created"}`, gotBody)
	assert.Equal(t, "task.created", got.Header.Get("X-Webhook-Event"))
	assert.Equal(t, "req-1", got.Header.Get(requestid.Header))
	assert.Equal(t, "corr-1", got.Header.Get(requestid.CorrelationHeader))
}

func TestSend_NoIDHeadersWithoutContext(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	_, err := newClient(receiverConfig(srv.URL)).Send(context.Background(), post("{}"))
	require.NoError(t, err)
	assert.Empty(t, got.Get(requestid.Header))
	assert.Empty(t, got.Get(requestid.CorrelationHeader))
}

func TestSend_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		failures     []int
		wantAttempts int32
		wantStatus   int
		wantErr      error
	}{
		{name: "5xx then success", failures: []int{500, 502}, wantAttempts: 3, wantStatus: http.StatusOK},
		{name: "429 then success", failures: []int{429}, wantAttempts: 2, wantStatus: http.StatusOK},
		{name: "4xx is final", failures: []int{400}, wantAttempts: 1, wantStatus: http.StatusBadRequest},
		{name: "exhausted keeps last reply", failures: []int{503, 503, 503}, wantAttempts: 3, wantStatus: http.StatusServiceUnavailable, wantErr: httpclient.ErrRetriesExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				count  atomic.Int32
				mu     sync.Mutex
				bodies []string
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				mu.Lock()
				bodies = append(bodies, string(b))
				mu.Unlock()
				n := int(count.Add(1))
				if n <= len(tt.failures) {
					w.WriteHeader(tt.failures[n-1])
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			resp, err := newClient(receiverConfig(srv.URL)).Send(context.Background(), post("payload"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, resp)

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Send() status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if got := count.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
			mu.Lock()
			defer mu.Unlock()
			for i, b := range bodies {
				if b != "payload" {
					t.Errorf("attempt %d body = %q, want %q", i+1, b, "payload")
				}
			}
		})
	}
}

func TestSend_CircuitBreaker(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	cfg := receiverConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	client := newClient(cfg)

	_, err := client.Send(context.Background(), post("{}"))
	require.ErrorIs(t, err, httpclient.ErrRetriesExhausted)

	hits := count.Load()
	resp, err := client.Send(context.Background(), post("{}"))
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Nil(t, resp)
	assert.Equal(t, hits, count.Load(), "receiver must not be called while the circuit is open")

	err = client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")

	time.Sleep(150 * time.Millisecond)
	err = client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degraded")

	failing.Store(false)
	resp, err = client.Send(context.Background(), post("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestSend_CanceledCallerDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := receiverConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := newClient(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Send(ctx, post("{}"))
	require.Error(t, err)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Send() error = %v, want context.Canceled", err)
	}
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestSend_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := receiverConfig(url)
	cfg.Retry.MaxAttempts = 2
	resp, err := newClient(cfg).Send(context.Background(), post("{}"))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.False(t, errors.Is(err, httpclient.ErrRetriesExhausted))
}

func TestSend_TruncatesLargeReplies(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 128<<10)))
	}))
	t.Cleanup(srv.Close)

	resp, err := newClient(receiverConfig(srv.URL)).Send(context.Background(), post("{}"))
	require.NoError(t, err)
	assert.Len(t, resp.Body, 64<<10)
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	if got := newClient(receiverConfig("http://localhost")).Name(); got != "webhook" {
		t.Errorf("Name() = %q, want %q", got, "webhook")
	}
}
