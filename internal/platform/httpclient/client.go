// Package httpclient sends outbound calls to a single downstream receiver.
// Each call passes through a circuit breaker, an optional rate limiter and a
// retry loop with exponential backoff, and is traced as an OTEL client span.
//
//	client := httpclient.New(&cfg.Webhook, "webhook", metrics, logger)
//	resp, err := client.Send(ctx, httpclient.Request{Method: http.MethodPost, Path: "/hooks", Body: body})
//
// Bodies are byte slices so every retry replays the same payload, and
// responses are read fully before Send returns; callers never own a
// connection.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/requestid"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

// ErrRetriesExhausted is returned alongside the last response when every
// attempt got a retryable status.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Request is one outbound call relative to the client's base URL.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Response is a downstream reply with its body already read.
// Body holds at most maxResponseBody bytes.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the receiver answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*Response]
	limiter *rate.Limiter // nil when unlimited
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the receiver described by cfg. name identifies
// the receiver in spans, metrics and health output. metrics may be nil.
func New(cfg *config.WebhookConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		retry: retryPolicy{
			maxAttempts:     max(cfg.Retry.MaxAttempts, 1),
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// Caller cancellation says nothing about the receiver's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("receiver circuit changed state",
				slog.String("receiver", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// Send performs req. A non-2xx reply that is not retryable is returned with
// a nil error so the caller can interpret it. After the last retryable
// failure the final response is returned together with ErrRetriesExhausted.
// Breaker rejections and transport errors return a nil response.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		ctx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.sendWithRetry(ctx, req)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// Name identifies the receiver; with HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without contacting the receiver.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded, probing after failures", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing, deliveries suspended", c.name)
	default:
		return fmt.Errorf("%s: unknown breaker state %v", c.name, state)
	}
}

// newHTTPRequest builds a fresh request per attempt, stamped with the
// request and correlation IDs carried by ctx.
func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	hr, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, bytesReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", c.name, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			hr.Header.Add(k, v)
		}
	}
	if id := requestid.FromContext(ctx); id != "" {
		hr.Header.Set(requestid.Header, id)
	}
	if id := requestid.CorrelationFromContext(ctx); id != "" {
		hr.Header.Set(requestid.CorrelationHeader, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(hr.Header))
	return hr, nil
}

func (c *Client) startSpan(ctx context.Context, req Request) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer("httpclient").Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.route", req.Path),
			attribute.String("peer.service", c.name),
		),
	)
}

// record is a no-op without metrics. It runs outside the breaker so
// rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if resp.OK() && err == nil {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
