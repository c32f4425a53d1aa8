package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

// SessionRepository stores trimmed session snapshots keyed by session id.
// The snapshot is opaque JSONB so schema changes in the profile never need a
// migration.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *SessionRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026030801)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	session_id TEXT PRIMARY KEY,
	phase TEXT NOT NULL,
	state JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chat_sessions_updated_at ON chat_sessions(updated_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *SessionRepository) Save(ctx context.Context, state domain.SessionState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO chat_sessions (session_id, phase, state, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id)
DO UPDATE SET phase = EXCLUDED.phase, state = EXCLUDED.state, updated_at = EXCLUDED.updated_at
`,
		state.SessionID, string(state.Phase), payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Load(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
SELECT state FROM chat_sessions WHERE session_id = $1
`, sessionID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrSessionNotFound, "load session", fmt.Errorf("session %s", sessionID))
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	state.SessionID = sessionID
	return &state, nil
}

// DeleteStale removes sessions idle longer than maxAge. Returns the number
// of deleted rows.
func (r *SessionRepository) DeleteStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM chat_sessions WHERE updated_at < $1
`, time.Now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("delete stale sessions: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}
