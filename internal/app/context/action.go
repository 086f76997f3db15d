package appctx

import "context"

// Action is a single write with rollback capability.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is only called if Execute
	// returned nil.
	Rollback(ctx context.Context) error

	// Description names the write for logs, e.g. `create team "platform"`.
	Description() string
}

// AddAction queues action for Commit without touching the cache.
func (rc *RequestContext) AddAction(action Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.actions = append(rc.actions, action)
	return nil
}

// ActionFunc builds an Action from closures. A nil rollback is a no-op.
func ActionFunc(desc string, execute, rollback func(ctx context.Context) error) Action {
	return &funcAction{desc: desc, exec: execute, undo: rollback}
}

type funcAction struct {
	desc string
	exec func(ctx context.Context) error
	undo func(ctx context.Context) error
}

func (a *funcAction) Execute(ctx context.Context) error { return a.exec(ctx) }

func (a *funcAction) Rollback(ctx context.Context) error {
	if a.undo == nil {
		return nil
	}
	return a.undo(ctx)
}

func (a *funcAction) Description() string { return a.desc }
