// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the application.
type Config struct {
	// DBPath is the SQLite file backing local storage.
	DBPath string
	// NATSURL is the remote store endpoint. Empty means the remote
	// backend is not configured and the app runs local-only.
	NATSURL string
	// NATSCreds is an optional credentials file for the remote store.
	NATSCreds string
	// User is the identity to sign in as on the remote store.
	User string
	// Bucket is the key-value bucket holding all remote documents.
	Bucket string
	// RemoteTimeout bounds every individual remote store call.
	RemoteTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults. The remote store
// is unconfigured by default.
func DefaultConfig() Config {
	return Config{
		Bucket:        "syllabus",
		RemoteTimeout: 5 * time.Second,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("SYLLABUS_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".syllabus", "syllabus.db")
	}

	cfg.NATSURL = os.Getenv("SYLLABUS_NATS_URL")
	cfg.NATSCreds = os.Getenv("SYLLABUS_NATS_CREDS")
	cfg.User = os.Getenv("SYLLABUS_USER")

	if v := os.Getenv("SYLLABUS_BUCKET"); v != "" {
		cfg.Bucket = v
	}
	if v := os.Getenv("SYLLABUS_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RemoteTimeout = time.Duration(n) * time.Millisecond
		}
	}

	return cfg, nil
}
