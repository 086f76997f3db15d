package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrEventType   = attribute.Key("event.type")
	AttrDenialKind  = attribute.Key("denial.kind")
)

// Metrics holds the tracker's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	DomainEventsTotal     metric.Int64Counter
	AccessDeniedTotal     metric.Int64Counter
	RealtimeConnections   metric.Int64UpDownCounter
}

// NewMetrics registers every instrument on a meter named serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	histograms := []struct {
		dst              *metric.Float64Histogram
		name, desc, unit string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests", "s"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outgoing webhook requests", "s"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit(h.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst              *metric.Int64Counter
		name, desc, unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Outgoing webhook requests", "{request}"},
		{&m.DomainEventsTotal, "tracker.domain.events.total", "Recorded domain events", "{event}"},
		{&m.AccessDeniedTotal, "tracker.access.denied.total", "Authorization denials", "{denial}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	conns, err := meter.Int64UpDownCounter("tracker.realtime.connections",
		metric.WithDescription("Open notification websocket connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tracker.realtime.connections: %w", err)
	}
	m.RealtimeConnections = conns

	return m, nil
}
