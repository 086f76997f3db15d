// Package appctx provides request-scoped memoization and staged writes for
// application services.
//
// A RequestContext is created per operation and travels inside the
// context.Context it wraps, so helpers deep in a call chain can reach it:
//
//	rc := appctx.New(ctx)
//
//	// Memoize lookups shared by several steps.
//	proj, err := appctx.Memo(rc, "project:7", loadProject)
//
//	// Stage writes that must succeed or fail together.
//	rc.Stage("team", t, &createTeamAction{...})
//	rc.Stage("membership", m, &addMemberAction{...})
//
//	// Execute staged writes, rolling back on failure.
//	err = rc.Commit(rc)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyCommitted is returned when AddAction, Stage, or Commit is
// called on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. The same cache key was used with
// different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type requestContextKey struct{}

// RequestContext is a request-scoped context wrapper providing in-memory
// caching and staged action execution. It must not outlive the operation
// that created it.
//
// All methods are safe for concurrent use. Concurrent misses on the same
// key may fetch more than once; the last result wins.
type RequestContext struct {
	context.Context

	cacheMu sync.RWMutex
	cache   map[string]cacheEntry

	queueMu   sync.Mutex
	actions   []Action
	committed bool
}

// cacheEntry stores the result of a fetch, including any error, so failed
// lookups are not repeated within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping ctx. The returned value carries
// itself, so FromContext works on it and on every context derived from it.
func New(ctx context.Context) *RequestContext {
	rc := &RequestContext{cache: make(map[string]cacheEntry)}
	rc.Context = context.WithValue(ctx, requestContextKey{}, rc)
	return rc
}

// FromContext returns the RequestContext carried by ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// the result. Both values and errors are cached.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.cacheMu.RLock()
	entry, ok := rc.cache[key]
	rc.cacheMu.RUnlock()

	if ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.cacheMu.Unlock()

	return val, err
}

// Memo is GetOrFetch through whatever RequestContext ctx carries. Without
// one, fetchFn is called directly and nothing is cached.
func Memo[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc, ok := FromContext(ctx)
	if !ok {
		return fetchFn(ctx)
	}
	return GetOrFetch(rc, key, fetchFn)
}

// Stage caches entity under key and queues action for Commit. Subsequent
// GetOrFetch calls for key return the staged entity.
func (rc *RequestContext) Stage(key string, entity any, action Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}

	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: entity}
	rc.cacheMu.Unlock()

	rc.actions = append(rc.actions, action)
	return nil
}
