// Package sqlite persists the session slot: the single serialized identity
// record that survives restarts. Domain collections stay in the memory
// driver; this driver exists so a login outlives a process restart when a
// database file is configured.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	_ "modernc.org/sqlite"
)

// sessionKey is the fixed key the identity record is stored under. There is
// only ever one session; the key exists so the row is addressable.
const sessionKey = "current"

type SessionStore struct {
	db *sql.DB
}

// NewSessionStore opens (or creates) the SQLite database at dsn.
func NewSessionStore(dsn string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SessionStore{db: db}, nil
}

func (s *SessionStore) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load reads the persisted session, mapping an empty slot to ErrNotFound.
func (s *SessionStore) Load(ctx context.Context) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, email, name, role, first_login, workspace_ids,
		       token_fingerprint, created_at, updated_at
		FROM session WHERE key = ?`, sessionKey)

	var (
		sess         domain.Session
		role         string
		firstLogin   int
		workspaceIDs string
		createdAt    string
		updatedAt    string
	)
	err := row.Scan(
		&sess.ID, &sess.UserID, &sess.Email, &sess.Name, &role, &firstLogin,
		&workspaceIDs, &sess.TokenFingerprint, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}

	sess.Role = domain.Role(role)
	sess.FirstLogin = firstLogin != 0
	if workspaceIDs != "" {
		if err := json.Unmarshal([]byte(workspaceIDs), &sess.WorkspaceIDs); err != nil {
			return domain.Session{}, fmt.Errorf("decode workspace ids: %w", err)
		}
	}
	if sess.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Session{}, fmt.Errorf("parse created_at: %w", err)
	}
	if sess.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return domain.Session{}, fmt.Errorf("parse updated_at: %w", err)
	}

	return sess, nil
}

// Save upserts the session record under the fixed key.
func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	workspaceIDs, err := json.Marshal(sess.WorkspaceIDs)
	if err != nil {
		return fmt.Errorf("encode workspace ids: %w", err)
	}

	firstLogin := 0
	if sess.FirstLogin {
		firstLogin = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session (key, id, user_id, email, name, role, first_login,
		                     workspace_ids, token_fingerprint, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			id = excluded.id,
			user_id = excluded.user_id,
			email = excluded.email,
			name = excluded.name,
			role = excluded.role,
			first_login = excluded.first_login,
			workspace_ids = excluded.workspace_ids,
			token_fingerprint = excluded.token_fingerprint,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		sessionKey, sess.ID, sess.UserID, sess.Email, sess.Name, string(sess.Role),
		firstLogin, string(workspaceIDs), sess.TokenFingerprint,
		sess.CreatedAt.UTC().Format(time.RFC3339Nano),
		sess.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Clear removes the session record. Clearing an empty slot is fine.
func (s *SessionStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, sessionKey)
	return err
}
