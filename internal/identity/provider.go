package identity

import (
	"context"
	"errors"
)

// ErrNotConfigured means no remote backend is configured at all. Resolution
// falls back to local mode without surfacing anything to the user.
var ErrNotConfigured = errors.New("remote backend not configured")

// ErrNoCredentials means sign-in was requested but no credentials are
// available. Treated as a silent no-op, the way a dismissed sign-in prompt
// would be.
var ErrNoCredentials = errors.New("no credentials configured")

// ErrNoSession means there is no previous session to restore.
var ErrNoSession = errors.New("no restorable session")

// Provider is the authentication surface consumed by the Resolver. A
// provider owns the connection to the auth backend; it does not decide
// fallback policy.
type Provider interface {
	// Restore re-establishes a previous session without user interaction.
	// Returns ErrNotConfigured or ErrNoSession when that is impossible.
	Restore(ctx context.Context) (Identity, error)
	// SignIn establishes a fresh session. Returns ErrNoCredentials for
	// the silent dismissed-prompt case; any other error is a real
	// authentication failure to surface.
	SignIn(ctx context.Context) (Identity, error)
	// SignOut ends the current session. Never fails the caller: the
	// resolver falls back to the local sentinel regardless.
	SignOut(ctx context.Context)
}

// SessionStore records the last signed-in uid across process restarts.
// Implemented by the local persistence adapter.
type SessionStore interface {
	SaveSession(uid string)
	LoadSession() (string, bool)
	ClearSession()
}
