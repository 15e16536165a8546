package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/syllabus/internal/cli"
	"github.com/alexanderramin/syllabus/internal/config"
	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/state"
	"github.com/alexanderramin/syllabus/internal/store"
	"github.com/alexanderramin/syllabus/internal/sync"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	local := store.NewLocal(database, logger)
	st := state.New()

	provider := identity.NewNATSProvider(identity.NATSProviderConfig{
		URL:       cfg.NATSURL,
		CredsFile: cfg.NATSCreds,
		User:      cfg.User,
		Timeout:   cfg.RemoteTimeout,
	}, local)
	resolver := identity.NewResolver(provider, logger)

	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	warn := func(msg string) {
		fmt.Fprintln(os.Stderr, warnStyle.Render(msg))
	}

	coord := sync.NewCoordinator(resolver, local, st, warn, logger)
	mirror := sync.NewMirror(local, st, logger)

	dial := func(ctx context.Context) (store.Remote, error) {
		conn := provider.Conn()
		if conn == nil {
			return nil, fmt.Errorf("no live connection")
		}
		return store.NewNATSStore(ctx, conn, cfg.Bucket, cfg.RemoteTimeout)
	}

	session := sync.NewSession(resolver, coord, mirror, dial, logger)
	session.Start(context.Background())
	defer session.Close()

	app := &cli.App{
		Coord:    coord,
		State:    st,
		Session:  session,
		Resolver: resolver,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func logLevel() slog.Level {
	if os.Getenv("SYLLABUS_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
