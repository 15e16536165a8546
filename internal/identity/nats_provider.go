package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSProviderConfig holds the connection settings for the remote backend.
// An empty URL means no remote backend is configured.
type NATSProviderConfig struct {
	URL       string
	CredsFile string
	User      string
	Timeout   time.Duration
}

// NATSProvider authenticates against the remote backend by establishing a
// NATS connection with the configured credentials. The uid is the configured
// user name; a session record lets later startups restore without an
// explicit sign-in.
type NATSProvider struct {
	cfg      NATSProviderConfig
	sessions SessionStore

	mu sync.Mutex
	nc *nats.Conn
}

// NewNATSProvider creates a provider. sessions may not be nil.
func NewNATSProvider(cfg NATSProviderConfig, sessions SessionStore) *NATSProvider {
	return &NATSProvider{cfg: cfg, sessions: sessions}
}

func (p *NATSProvider) Restore(ctx context.Context) (Identity, error) {
	if p.cfg.URL == "" {
		return Identity{}, ErrNotConfigured
	}
	uid, ok := p.sessions.LoadSession()
	if !ok {
		return Identity{}, ErrNoSession
	}
	if err := p.connect(); err != nil {
		return Identity{}, fmt.Errorf("restoring session for %s: %w", uid, err)
	}
	return Identity{UID: uid}, nil
}

func (p *NATSProvider) SignIn(ctx context.Context) (Identity, error) {
	// No remote configuration or no user to sign in as: the equivalent of
	// a dismissed sign-in prompt.
	if p.cfg.URL == "" || p.cfg.User == "" {
		return Identity{}, ErrNoCredentials
	}
	if err := p.connect(); err != nil {
		return Identity{}, fmt.Errorf("signing in as %s: %w", p.cfg.User, err)
	}
	p.sessions.SaveSession(p.cfg.User)
	return Identity{UID: p.cfg.User}, nil
}

func (p *NATSProvider) SignOut(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.nc != nil {
		p.nc.Close()
		p.nc = nil
	}
	p.sessions.ClearSession()
}

// Conn returns the live connection, or nil when signed out.
func (p *NATSProvider) Conn() *nats.Conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nc
}

func (p *NATSProvider) connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.nc != nil && p.nc.IsConnected() {
		return nil
	}

	opts := []nats.Option{
		nats.Name("syllabus"),
		nats.Timeout(p.cfg.Timeout),
		// A dropped connection surfaces as a failed write, which triggers
		// demotion; the session never silently re-promotes.
		nats.NoReconnect(),
	}
	if p.cfg.CredsFile != "" {
		opts = append(opts, nats.UserCredentials(p.cfg.CredsFile))
	}

	nc, err := nats.Connect(p.cfg.URL, opts...)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", p.cfg.URL, err)
	}
	p.nc = nc
	return nil
}
