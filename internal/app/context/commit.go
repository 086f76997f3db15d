package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

// CommitError reports the staged write that failed and any errors raised
// while undoing the writes before it.
type CommitError struct {
	Step     int    // 1-based position of the failed action
	Action   string // its Description
	Err      error
	Rollback error // joined rollback failures, nil when the undo was clean
}

func (e *CommitError) Error() string {
	msg := fmt.Sprintf("executing %s: %v", e.Action, e.Err)
	if e.Rollback != nil {
		msg += fmt.Sprintf(" (rollback incomplete: %v)", e.Rollback)
	}
	return msg
}

// Unwrap exposes both the execute error and the rollback failures, so
// errors.Is sees domain sentinels from either side.
func (e *CommitError) Unwrap() []error {
	if e.Rollback == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Rollback}
}

// Commit executes staged actions in insertion order. When one fails, the
// actions that already succeeded are rolled back newest first and Commit
// returns a *CommitError. Every rollback runs even if an earlier one fails.
//
// The RequestContext is committed from the first call on; later calls and
// later staging return ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	actions := rc.actions
	rc.queueMu.Unlock()

	if len(actions) == 0 {
		return nil
	}

	logger := logging.FromContext(ctx)
	start := time.Now()

	for i, a := range actions {
		if err := a.Execute(ctx); err != nil {
			cerr := &CommitError{
				Step:     i + 1,
				Action:   a.Description(),
				Err:      err,
				Rollback: undo(ctx, actions[:i]),
			}
			logger.ErrorContext(ctx, "staged write failed",
				slog.Int("step", cerr.Step),
				slog.Int("total", len(actions)),
				slog.String("action", cerr.Action),
				slog.Int("rolled_back", i),
				slog.Bool("rollback_clean", cerr.Rollback == nil),
				slog.Any("error", err),
			)
			return cerr
		}
	}

	logger.DebugContext(ctx, "staged writes committed",
		slog.Int("actions", len(actions)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// undo rolls back done newest first and joins whatever fails.
func undo(ctx context.Context, done []Action) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].Rollback(ctx); err != nil {
			errs = append(errs, fmt.Errorf("undo %s: %w", done[i].Description(), err))
		}
	}
	return errors.Join(errs...)
}
