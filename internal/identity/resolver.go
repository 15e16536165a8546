package identity

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ChangeListener is notified after the active identity or liveness changes.
// Listeners run synchronously, so every rebind completes before the next
// domain operation is accepted.
type ChangeListener func(id Identity, live bool)

// Resolver produces the current effective identity and the liveness flag
// saying whether the remote backend is usable. It starts at the local
// sentinel; Init attempts a session restore.
type Resolver struct {
	provider Provider
	logger   *slog.Logger

	mu        sync.Mutex
	current   Identity
	live      bool
	bound     bool
	listeners []ChangeListener
}

// NewResolver creates a resolver bound to the given provider.
func NewResolver(provider Provider, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{provider: provider, logger: logger}
}

// OnChange registers a listener. Register all listeners before Init.
func (r *Resolver) OnChange(fn ChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Current returns the active identity and liveness. The boolean UID check
// against the zero Identity distinguishes "not yet initialized".
func (r *Resolver) Current() (Identity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.live
}

// Init resolves the startup identity. Configuration errors and missing
// sessions resolve silently to the local sentinel; they are never surfaced
// as errors.
func (r *Resolver) Init(ctx context.Context) {
	id, err := r.provider.Restore(ctx)
	switch {
	case err == nil:
		r.set(id, true)
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrNoSession):
		r.set(Local(), false)
	default:
		r.logger.Warn("session restore failed, using local mode", "error", err)
		r.set(Local(), false)
	}
}

// SignIn establishes a fresh authenticated session. ErrNoCredentials is
// swallowed (the dismissed-prompt case); other provider errors are returned
// for the caller to surface.
func (r *Resolver) SignIn(ctx context.Context) error {
	id, err := r.provider.SignIn(ctx)
	if errors.Is(err, ErrNoCredentials) {
		return nil
	}
	if err != nil {
		return err
	}
	r.set(id, true)
	return nil
}

// SignOut always resolves to the local sentinel.
func (r *Resolver) SignOut(ctx context.Context) {
	r.provider.SignOut(ctx)
	r.set(Local(), false)
}

// Demote replaces the active identity with the local sentinel and clears
// liveness. Used by the sync coordinator after a remote failure; a no-op
// when already local, so one failure burst demotes only once. The check and
// the flip share one critical section so concurrent failures cannot both
// win the demotion.
func (r *Resolver) Demote() bool {
	r.mu.Lock()
	if r.bound && r.current.IsLocal {
		r.mu.Unlock()
		return false
	}
	id := Local()
	r.current = id
	r.live = false
	r.bound = true
	listeners := make([]ChangeListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(id, false)
	}
	return true
}

func (r *Resolver) set(id Identity, live bool) {
	r.mu.Lock()
	r.current = id
	r.live = live
	r.bound = true
	listeners := make([]ChangeListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(id, live)
	}
}
