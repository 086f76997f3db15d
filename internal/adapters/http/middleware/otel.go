package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/project-tracker/internal/platform/requestid"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

const (
	tracerName = "github.com/jsamuelsen11/project-tracker/http"

	// unmatchedRoute labels requests chi could not route, keeping metric
	// cardinality bounded.
	unmatchedRoute = "unmatched"
)

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records request count and duration on
// metrics. A nil metrics records spans only.
//
// The span starts out named after the raw path and is renamed to the chi
// route pattern once the router has matched, so /tasks/1 and /tasks/2 land
// under "GET /tasks/{id}".
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			}
			if id := requestid.FromContext(ctx); id != "" {
				attrs = append(attrs, attribute.String("request.id", id))
			}
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(ctx)
			if route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			} else {
				route = unmatchedRoute
			}

			span.SetAttributes(attribute.Int("http.response.status_code", rw.statusCode))
			if rw.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			}

			if metrics != nil {
				recordServerRequest(ctx, metrics, r.Method, route, rw.statusCode, time.Since(start))
			}
		})
	}
}

// routePattern is the matched chi pattern, or "" outside a chi router.
func routePattern(ctx context.Context) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

func recordServerRequest(ctx context.Context, m *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	set := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
		telemetry.AttrHTTPRoute.String(route),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), set)
	m.ServerRequestTotal.Add(ctx, 1, set)
}
