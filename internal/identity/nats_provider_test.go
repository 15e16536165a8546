package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/testutil"
)

type memSessions struct {
	uid string
	ok  bool
}

func (m *memSessions) SaveSession(uid string)        { m.uid, m.ok = uid, true }
func (m *memSessions) LoadSession() (string, bool)   { return m.uid, m.ok }
func (m *memSessions) ClearSession()                 { m.uid, m.ok = "", false }

func TestNATSProviderUnconfigured(t *testing.T) {
	p := identity.NewNATSProvider(identity.NATSProviderConfig{}, &memSessions{})

	_, err := p.Restore(context.Background())
	assert.ErrorIs(t, err, identity.ErrNotConfigured)

	_, err = p.SignIn(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoCredentials)
}

func TestNATSProviderSignInAndRestore(t *testing.T) {
	server := testutil.StartNATSServer(t)
	sessions := &memSessions{}
	p := identity.NewNATSProvider(identity.NATSProviderConfig{
		URL:     server.ClientURL(),
		User:    "u1",
		Timeout: 5 * time.Second,
	}, sessions)

	ctx := context.Background()
	id, err := p.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)
	assert.False(t, id.IsLocal)
	require.NotNil(t, p.Conn())

	// The recorded session restores without a fresh sign-in.
	id, err = p.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)

	p.SignOut(ctx)
	assert.Nil(t, p.Conn())
	_, err = p.Restore(ctx)
	assert.ErrorIs(t, err, identity.ErrNoSession)
}

func TestNATSProviderRestoreWithoutSession(t *testing.T) {
	server := testutil.StartNATSServer(t)
	p := identity.NewNATSProvider(identity.NATSProviderConfig{
		URL:     server.ClientURL(),
		Timeout: 5 * time.Second,
	}, &memSessions{})

	_, err := p.Restore(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoSession)
}

func TestNATSProviderConnectionFailure(t *testing.T) {
	sessions := &memSessions{}
	sessions.SaveSession("u1")
	p := identity.NewNATSProvider(identity.NATSProviderConfig{
		URL:     "nats://127.0.0.1:1",
		User:    "u1",
		Timeout: 200 * time.Millisecond,
	}, sessions)

	_, err := p.Restore(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, identity.ErrNoSession)
}
