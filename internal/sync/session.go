package sync

import (
	"context"
	"log/slog"

	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/store"
)

// DialFunc opens the remote document-store adapter for the identity the
// resolver just produced. It is called once per remote binding.
type DialFunc func(ctx context.Context) (store.Remote, error)

// Session glues the identity resolver, the sync coordinator and the live
// state mirror together: every identity change rebinds the mirror and
// points the coordinator at the matching backend.
type Session struct {
	resolver *identity.Resolver
	coord    *Coordinator
	mirror   *Mirror
	dial     DialFunc
	logger   *slog.Logger
}

// NewSession wires the session. It registers the identity listener and the
// mirror failure handler; call Start afterwards to resolve the startup
// identity.
func NewSession(resolver *identity.Resolver, coord *Coordinator, mirror *Mirror, dial DialFunc, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		resolver: resolver,
		coord:    coord,
		mirror:   mirror,
		dial:     dial,
		logger:   logger,
	}
	mirror.SetFailureHandler(coord.DemoteSession)
	resolver.OnChange(s.onIdentity)
	return s
}

// Start resolves the startup identity, which triggers the first binding.
func (s *Session) Start(ctx context.Context) {
	s.resolver.Init(ctx)
}

// SignIn establishes an authenticated session and rebinds to the remote
// backend on success.
func (s *Session) SignIn(ctx context.Context) error {
	return s.resolver.SignIn(ctx)
}

// SignOut drops the authenticated session and rebinds to local storage
// under the sentinel identity.
func (s *Session) SignOut(ctx context.Context) {
	s.resolver.SignOut(ctx)
}

// Close tears down any live remote binding.
func (s *Session) Close() {
	s.coord.setRemote(nil)
	s.mirror.Unbind()
}

// onIdentity is the resolver listener. It runs synchronously on every
// identity or liveness change, including the demotion path, where the
// rebind to local storage republishes state from the sentinel's data.
func (s *Session) onIdentity(id identity.Identity, live bool) {
	if id.IsLocal || !live {
		s.coord.setRemote(nil)
		s.mirror.BindLocal(id.UID)
		return
	}

	ctx := context.Background()
	remote, err := s.dial(ctx)
	if err != nil {
		s.logger.Error("remote store dial failed, using local mode", "error", err)
		s.coord.DemoteSession(err)
		return
	}
	s.coord.setRemote(remote)
	s.mirror.BindRemote(ctx, id.UID, remote)
}
