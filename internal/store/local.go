package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/alexanderramin/syllabus/internal/db"
)

// Local is the synchronous on-device adapter. It stores one JSON blob per
// (identity, collection) key. Failures are logged and absorbed, never
// returned: a failed read yields the collection's empty default and a failed
// write leaves the previous blob in place.
type Local struct {
	db     *sql.DB
	uow    db.UnitOfWork
	logger *slog.Logger
}

// NewLocal creates a Local adapter over an open database.
func NewLocal(database *sql.DB, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{
		db:     database,
		uow:    db.NewSQLiteUnitOfWork(database),
		logger: logger,
	}
}

// Get unmarshals the blob for (identity, collection) into out.
// Returns false when the blob is missing or unreadable; out is untouched.
func (l *Local) Get(identity, collection string, out any) bool {
	var payload string
	err := l.db.QueryRow(
		`SELECT payload FROM blobs WHERE identity = ? AND collection = ?`,
		identity, collection,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		l.logger.Error("local read failed", "collection", collection, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		l.logger.Error("local blob corrupt", "collection", collection, "error", err)
		return false
	}
	return true
}

// Put serializes v and stores it under (identity, collection).
func (l *Local) Put(identity, collection string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		l.logger.Error("local marshal failed", "collection", collection, "error", err)
		return
	}
	if _, err := l.db.Exec(upsertBlob, identity, collection, string(payload), nowRFC3339()); err != nil {
		l.logger.Error("local write failed", "collection", collection, "error", err)
	}
}

// PutMany stores several collections in one transaction, so a multi-blob
// write such as a course removal plus its task cascade is atomic.
func (l *Local) PutMany(identity string, blobs map[string]any) {
	err := l.uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		now := nowRFC3339()
		for collection, v := range blobs {
			payload, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, upsertBlob, identity, collection, string(payload), now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.logger.Error("local multi-write failed", "error", err)
	}
}

// Delete removes the blob for (identity, collection).
func (l *Local) Delete(identity, collection string) {
	if _, err := l.db.Exec(
		`DELETE FROM blobs WHERE identity = ? AND collection = ?`,
		identity, collection,
	); err != nil {
		l.logger.Error("local delete failed", "collection", collection, "error", err)
	}
}

const upsertBlob = `INSERT INTO blobs (identity, collection, payload, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(identity, collection) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

// SaveSession records the last signed-in uid so startup can restore the
// remote session without a fresh sign-in.
func (l *Local) SaveSession(uid string) {
	query := `INSERT INTO sessions (scope, uid, updated_at) VALUES ('auth', ?, ?)
		ON CONFLICT(scope) DO UPDATE SET uid = excluded.uid, updated_at = excluded.updated_at`
	if _, err := l.db.Exec(query, uid, nowRFC3339()); err != nil {
		l.logger.Error("session save failed", "error", err)
	}
}

// LoadSession returns the recorded uid, if any.
func (l *Local) LoadSession() (string, bool) {
	var uid string
	err := l.db.QueryRow(`SELECT uid FROM sessions WHERE scope = 'auth'`).Scan(&uid)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		l.logger.Error("session load failed", "error", err)
		return "", false
	}
	return uid, true
}

// ClearSession forgets the recorded session.
func (l *Local) ClearSession() {
	if _, err := l.db.Exec(`DELETE FROM sessions WHERE scope = 'auth'`); err != nil {
		l.logger.Error("session clear failed", "error", err)
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
