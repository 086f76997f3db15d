package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var _ ports.WebhookPublisher = (*Publisher)(nil)

// Delivery headers set on every POST.
const (
	HeaderDeliveryID = "X-Webhook-Delivery"
	HeaderEventType  = "X-Webhook-Event"
	HeaderSignature  = "X-Webhook-Signature"
)

// Payload is the JSON body POSTed for each event.
type Payload struct {
	DeliveryID string         `json:"deliveryId"`
	EventType  string         `json:"eventType"`
	ActorID    int64          `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   int64          `json:"entityId"`
	Details    map[string]any `json:"details"`
	OccurredAt string         `json:"occurredAt"`
}

// NewPayload builds the delivery body for e.
func NewPayload(e domain.Event) Payload {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	return Payload{
		DeliveryID: uuid.NewString(),
		EventType:  e.Type.String(),
		ActorID:    e.ActorID,
		EntityType: e.EntityType.String(),
		EntityID:   e.EntityID,
		Details:    details,
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}

// Sign returns the hex HMAC-SHA256 of body under secret, prefixed with the
// algorithm the way receivers such as GitHub expect ("sha256=...").
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Publisher POSTs events to the configured receiver. Circuit breaking,
// retries, rate limiting and tracing come from the httpclient.Client.
type Publisher struct {
	client *httpclient.Client
	path   string
	secret string
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithSecret signs each body; receivers verify the X-Webhook-Signature
// header against their copy of the secret.
func WithSecret(secret string) Option {
	return func(p *Publisher) { p.secret = secret }
}

// NewPublisher creates a Publisher that POSTs to path on the client's
// receiver.
func NewPublisher(client *httpclient.Client, path string, logger *slog.Logger, opts ...Option) *Publisher {
	p := &Publisher{client: client, path: path, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish implements ports.WebhookPublisher. Any 2xx reply is success.
func (p *Publisher) Publish(ctx context.Context, e domain.Event) error {
	payload := NewPayload(e)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set(HeaderDeliveryID, payload.DeliveryID)
	header.Set(HeaderEventType, payload.EventType)
	if p.secret != "" {
		header.Set(HeaderSignature, Sign(p.secret, body))
	}

	resp, err := p.client.Send(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   p.path,
		Header: header,
		Body:   body,
	})
	switch {
	case resp != nil && !resp.OK():
		return TranslateResponse(resp)
	case err != nil:
		return fmt.Errorf("delivering %s: %w", payload.EventType, err)
	}

	p.logger.DebugContext(ctx, "webhook delivered",
		slog.String("delivery_id", payload.DeliveryID),
		slog.String("event_type", payload.EventType),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}

// Name and HealthCheck delegate to the underlying client so the publisher
// can be registered as a ports.HealthChecker.
func (p *Publisher) Name() string {
	return p.client.Name()
}

// HealthCheck reports the circuit breaker state of the delivery client.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}
