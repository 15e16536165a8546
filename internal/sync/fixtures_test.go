package sync

import (
	"context"
	"errors"
	"log/slog"
	gosync "sync"
	"testing"

	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/state"
	"github.com/alexanderramin/syllabus/internal/store"
	"github.com/alexanderramin/syllabus/internal/testutil"
)

type fakeProvider struct {
	id         identity.Identity
	restoreErr error
}

func (p *fakeProvider) Restore(ctx context.Context) (identity.Identity, error) {
	if p.restoreErr != nil {
		return identity.Identity{}, p.restoreErr
	}
	return p.id, nil
}

func (p *fakeProvider) SignIn(ctx context.Context) (identity.Identity, error) {
	if p.restoreErr != nil {
		return identity.Identity{}, identity.ErrNoCredentials
	}
	return p.id, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) {}

type fixture struct {
	st       *state.Store
	local    *store.Local
	resolver *identity.Resolver
	coord    *Coordinator
	session  *Session
	remote   *fakeRemote

	mu       gosync.Mutex
	warnings []string
}

func (f *fixture) warn(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warnings = append(f.warnings, msg)
}

func (f *fixture) warningCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.warnings)
}

func newFixture(t *testing.T, provider identity.Provider, remote *fakeRemote) *fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	f := &fixture{
		st:     state.New(),
		local:  store.NewLocal(testutil.NewTestDB(t), logger),
		remote: remote,
	}
	f.resolver = identity.NewResolver(provider, logger)
	f.coord = NewCoordinator(f.resolver, f.local, f.st, f.warn, logger)
	mirror := NewMirror(f.local, f.st, logger)

	dial := func(ctx context.Context) (store.Remote, error) {
		if remote == nil {
			return nil, errors.New("no remote in this test")
		}
		return remote, nil
	}
	f.session = NewSession(f.resolver, f.coord, mirror, dial, logger)
	return f
}

// localFixture starts a session that resolves to the local sentinel.
func localFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, &fakeProvider{restoreErr: identity.ErrNotConfigured}, nil)
	f.session.Start(context.Background())
	return f
}

// remoteFixture starts a session bound to an in-memory remote store.
func remoteFixture(t *testing.T) *fixture {
	t.Helper()
	provider := &fakeProvider{id: identity.Identity{UID: "u1"}}
	f := newFixture(t, provider, newFakeRemote())
	f.session.Start(context.Background())
	return f
}
