// Package health runs dependency checks for the readiness probe and the
// admin stats report.
package health

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single checker when no option overrides it.
const DefaultCheckTimeout = 2 * time.Second

// Registry holds checkers by name and runs them concurrently.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each checker individually. A checker that
// overruns is reported as failed even if it later succeeds.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker, replacing any checker with the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// CheckAll runs every checker in parallel and waits for all of them.
func (r *Registry) CheckAll(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	names := slices.Sorted(maps.Keys(r.checkers))
	checkers := make([]ports.HealthChecker, len(names))
	for i, n := range names {
		checkers[i] = r.checkers[n]
	}
	r.mu.RUnlock()

	report := ports.HealthReport{Components: make([]ports.ComponentHealth, len(checkers))}
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			report.Components[i] = r.run(ctx, names[i], c)
		})
	}
	wg.Wait()
	return report
}

func (r *Registry) run(ctx context.Context, name string, c ports.HealthChecker) ports.ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = fmt.Errorf("check did not finish: %w", ctx.Err())
	}
	return ports.ComponentHealth{Name: name, Err: err, Latency: time.Since(start)}
}
