package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

type fakeClient struct {
	mu       sync.Mutex
	messages [][]byte
	fail     bool
	closed   bool
}

func (c *fakeClient) Send(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return false
	}
	c.messages = append(c.messages, message)
	return true
}

func (c *fakeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.DiscardHandler))
}

func TestHub_PushDeliversToRecipientOnly(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	alice1, alice2, bob := &fakeClient{}, &fakeClient{}, &fakeClient{}
	hub.Register(1, alice1)
	hub.Register(1, alice2)
	hub.Register(2, bob)

	hub.Push(context.Background(), &notification.Notification{
		ID: 7, UserID: 1, Type: domain.EventTaskAssigned, Title: "Task assigned",
		EntityType: domain.EntityTask, EntityID: 3,
	})

	assert.Len(t, alice1.messages, 1)
	assert.Len(t, alice2.messages, 1)
	assert.Empty(t, bob.messages)

	var msg struct {
		Type string `json:"type"`
		Data struct {
			ID    int64  `json:"id"`
			Type  string `json:"type"`
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(alice1.messages[0], &msg))
	assert.Equal(t, MessageTypeNotification, msg.Type)
	assert.Equal(t, int64(7), msg.Data.ID)
	assert.Equal(t, "task.assigned", msg.Data.Type)
	assert.Equal(t, "Task assigned", msg.Data.Title)
}

func TestHub_PushDropsFailedClients(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	broken := &fakeClient{fail: true}
	healthy := &fakeClient{}
	hub.Register(1, broken)
	hub.Register(1, healthy)

	hub.Push(context.Background(), &notification.Notification{ID: 1, UserID: 1})

	assert.True(t, broken.closed)
	assert.Equal(t, 1, hub.Connections(1))
	assert.Len(t, healthy.messages, 1)
}

func TestHub_Unregister(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	c := &fakeClient{}
	hub.Register(1, c)

	assert.True(t, hub.Unregister(1, c))
	assert.False(t, hub.Unregister(1, c))
	assert.Equal(t, 0, hub.Connections(1))
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	a, b := &fakeClient{}, &fakeClient{}
	hub.Register(1, a)
	hub.Register(2, b)

	hub.Close()

	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.Equal(t, 0, hub.Connections(1))
}

func TestHub_TracksOpenConnections(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	require.NoError(t, err)
	hub := NewHub(slog.New(slog.DiscardHandler), WithMetrics(m))

	a, b, c := &fakeClient{}, &fakeClient{}, &fakeClient{}
	hub.Register(1, a)
	hub.Register(1, a)
	hub.Register(1, b)
	hub.Register(2, c)
	assert.Equal(t, int64(3), openConnections(t, reader))

	hub.Unregister(1, a)
	hub.Unregister(1, a)
	assert.Equal(t, int64(2), openConnections(t, reader))

	hub.Close()
	assert.Equal(t, int64(0), openConnections(t, reader))
}

func openConnections(t *testing.T, r *sdkmetric.ManualReader) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, r.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "tracker.realtime.connections" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "unexpected data type %T", m.Data)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func TestHub_ServeOverWebsocket(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn, 9)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections(9) == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Push(context.Background(), &notification.Notification{ID: 5, UserID: 9, Title: "hello"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"hello"`)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Connections(9) == 0 }, 2*time.Second, 10*time.Millisecond)
}
