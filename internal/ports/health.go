package ports

import (
	"context"
	"time"
)

// HealthChecker reports whether one dependency, such as the database or the
// webhook circuit, can currently serve traffic.
type HealthChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker on demand. Registering a
// second checker under an existing name replaces the first.
type HealthRegistry interface {
	Register(checker HealthChecker)
	CheckAll(ctx context.Context) HealthReport
}

// ComponentHealth is one checker's outcome. Err is nil when healthy.
type ComponentHealth struct {
	Name    string
	Err     error
	Latency time.Duration
}

// HealthReport is the outcome of one sweep, ordered by component name.
type HealthReport struct {
	Components []ComponentHealth
}

// Healthy reports whether every component passed. An empty report is
// healthy.
func (r HealthReport) Healthy() bool {
	for _, c := range r.Components {
		if c.Err != nil {
			return false
		}
	}
	return true
}

// Summary maps component names to "ok" or their failure message.
func (r HealthReport) Summary() map[string]string {
	out := make(map[string]string, len(r.Components))
	for _, c := range r.Components {
		if c.Err != nil {
			out[c.Name] = c.Err.Error()
			continue
		}
		out[c.Name] = "ok"
	}
	return out
}
