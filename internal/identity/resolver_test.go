package identity

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	restoreID  Identity
	restoreErr error
	signInID   Identity
	signInErr  error
	signedOut  bool
}

func (p *stubProvider) Restore(ctx context.Context) (Identity, error) {
	return p.restoreID, p.restoreErr
}

func (p *stubProvider) SignIn(ctx context.Context) (Identity, error) {
	return p.signInID, p.signInErr
}

func (p *stubProvider) SignOut(ctx context.Context) {
	p.signedOut = true
}

func newTestResolver(p Provider) *Resolver {
	return NewResolver(p, slog.New(slog.DiscardHandler))
}

func TestInitRestoresSession(t *testing.T) {
	r := newTestResolver(&stubProvider{restoreID: Identity{UID: "u1"}})
	r.Init(context.Background())

	id, live := r.Current()
	assert.Equal(t, "u1", id.UID)
	assert.False(t, id.IsLocal)
	assert.True(t, live)
}

func TestInitFallsBackSilently(t *testing.T) {
	for name, restoreErr := range map[string]error{
		"not configured": ErrNotConfigured,
		"no session":     ErrNoSession,
		"backend down":   errors.New("connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			r := newTestResolver(&stubProvider{restoreErr: restoreErr})
			r.Init(context.Background())

			id, live := r.Current()
			assert.Equal(t, Local(), id)
			assert.False(t, live)
		})
	}
}

func TestSignInSwallowsMissingCredentials(t *testing.T) {
	r := newTestResolver(&stubProvider{restoreErr: ErrNotConfigured, signInErr: ErrNoCredentials})
	r.Init(context.Background())

	require.NoError(t, r.SignIn(context.Background()))

	id, _ := r.Current()
	assert.Equal(t, Local(), id)
}

func TestSignInSurfacesRealFailures(t *testing.T) {
	authErr := errors.New("bad credentials")
	r := newTestResolver(&stubProvider{restoreErr: ErrNotConfigured, signInErr: authErr})
	r.Init(context.Background())

	assert.ErrorIs(t, r.SignIn(context.Background()), authErr)
}

func TestDemoteIsIdempotent(t *testing.T) {
	r := newTestResolver(&stubProvider{restoreID: Identity{UID: "u1"}})
	r.Init(context.Background())

	assert.True(t, r.Demote())
	assert.False(t, r.Demote())

	id, live := r.Current()
	assert.Equal(t, Local(), id)
	assert.False(t, live)
}

func TestDemoteConcurrentCallsWinOnce(t *testing.T) {
	r := newTestResolver(&stubProvider{restoreID: Identity{UID: "u1"}})
	r.Init(context.Background())

	var fired atomic.Int32
	r.OnChange(func(id Identity, live bool) {
		fired.Add(1)
	})

	const callers = 16
	var won atomic.Int32
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			if r.Demote() {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	assert.Equal(t, int32(1), fired.Load())

	id, live := r.Current()
	assert.Equal(t, Local(), id)
	assert.False(t, live)
}

func TestListenersRunOnEveryChange(t *testing.T) {
	r := newTestResolver(&stubProvider{restoreID: Identity{UID: "u1"}, signInID: Identity{UID: "u1"}})

	var seen []Identity
	r.OnChange(func(id Identity, live bool) {
		seen = append(seen, id)
	})

	r.Init(context.Background())
	require.True(t, r.Demote())
	require.NoError(t, r.SignIn(context.Background()))
	r.SignOut(context.Background())

	require.Len(t, seen, 4)
	assert.Equal(t, "u1", seen[0].UID)
	assert.True(t, seen[1].IsLocal)
	assert.Equal(t, "u1", seen[2].UID)
	assert.True(t, seen[3].IsLocal)
}
