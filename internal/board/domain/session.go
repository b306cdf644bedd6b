package domain

import "time"

// Session is the persisted identity record. Exactly one session exists at a
// time (the board emulates a single-user browser session); it survives
// restarts when the SQLite slot is configured and is removed on logout.
type Session struct {
	ID     string
	UserID string
	Email  string
	Name   string
	Role   Role

	// FirstLogin mirrors the user's flag at login time and is cleared when
	// the user sets a password.
	FirstLogin bool

	WorkspaceIDs []string

	// TokenFingerprint is the SHA-256 fingerprint of the issued access
	// token. The raw token is never persisted.
	TokenFingerprint string

	CreatedAt time.Time
	UpdatedAt time.Time
}
