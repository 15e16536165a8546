// Package identity resolves the active user context that scopes all stored
// data: either an authenticated remote identity or the local-only sentinel.
package identity

// LocalUID is the sentinel identity used whenever no remote session exists.
const LocalUID = "local-user"

// Identity is the active user context. It is replaced wholesale on sign-in,
// sign-out and demotion, never partially mutated.
type Identity struct {
	UID     string
	IsLocal bool
}

// Local returns the local sentinel identity.
func Local() Identity {
	return Identity{UID: LocalUID, IsLocal: true}
}
