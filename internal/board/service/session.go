package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

var (
	// ErrInvalidCredentials is deliberately coarse: callers can't tell an
	// unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrEmailNotFound is the internal outcome of a password reset for an
	// unknown address. The HTTP surface never forwards it verbatim.
	ErrEmailNotFound = errors.New("email_not_found")

	// ErrNotLoggedIn is returned by operations that require an active
	// session when the slot is empty.
	ErrNotLoggedIn = errors.New("not_logged_in")

	// ErrWeakPassword is a synchronous validation failure; no store state
	// is touched when it is returned.
	ErrWeakPassword = errors.New("weak_password")
)

// SessionService owns the authenticated identity: login, logout, password
// reset/update and profile updates. The identity is persisted to the
// Sessions slot so it survives a restart when the slot is SQLite-backed.
type SessionService struct {
	Users    store.Users
	Sessions store.Sessions

	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration

	// Delay simulates backend latency on operations that would contact a
	// real backend. Latency of 0 with any Delayer is a no-op.
	Delay   Delayer
	Latency time.Duration
}

// LoginResult carries the session record plus the bearer token the client
// authenticates subsequent requests with. The raw token is never stored;
// only its fingerprint lands in the session record.
type LoginResult struct {
	Session domain.Session
	Token   string
}

// Login validates credentials against the directory and, on success,
// persists the identity and issues an access token. Failures leave any
// existing session untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	if err := s.Delay.Wait(ctx, s.Latency); err != nil {
		return LoginResult{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login failed", slog.String("email", email))
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		log.Info("login failed", slog.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := domain.Session{
		ID:           idx.New().String(),
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		FirstLogin:   user.FirstLogin,
		WorkspaceIDs: user.WorkspaceIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := s.Signer.Sign(jwtx.NewAccessClaims(
		user.ID, sess.ID, s.Issuer,
		user.Name, user.Email, string(user.Role),
		s.accessTTL(), now,
	))
	if err != nil {
		return LoginResult{}, err
	}
	sess.TokenFingerprint = cryptox.FingerprintToken(token)

	if err := s.Sessions.Save(ctx, sess); err != nil {
		return LoginResult{}, err
	}

	log.Info("login succeeded", slog.String("user_id", user.ID))
	return LoginResult{Session: sess, Token: token}, nil
}

// Resume returns the persisted session, if any. This is the startup read of
// the identity slot.
func (s *SessionService) Resume(ctx context.Context) (domain.Session, error) {
	sess, err := s.Sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrNotLoggedIn
		}
		return domain.Session{}, err
	}
	return sess, nil
}

// Logout clears the persisted identity. Logging out while logged out is not
// an error.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.Sessions.Clear(ctx)
}

// ResetPassword looks the address up in the directory. The found/not-found
// distinction is internal: the HTTP handler answers with the same generic
// "check your email" message either way, and only the success flag differs.
func (s *SessionService) ResetPassword(ctx context.Context, email string) error {
	if err := s.Delay.Wait(ctx, s.Latency); err != nil {
		return err
	}

	_, err := s.Users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmailNotFound
		}
		return err
	}
	return nil
}

// UpdatePassword rehashes the current user's password and clears the
// first-login flag on both the directory record and the session.
func (s *SessionService) UpdatePassword(ctx context.Context, newPassword string) (domain.Session, error) {
	if err := ValidatePassword(newPassword); err != nil {
		return domain.Session{}, err
	}

	if err := s.Delay.Wait(ctx, s.Latency); err != nil {
		return domain.Session{}, err
	}

	sess, err := s.Resume(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	user, err := s.Users.GetUserByID(ctx, sess.UserID)
	if err != nil {
		return domain.Session{}, err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	user.PasswordHash = hash
	user.FirstLogin = false
	user.UpdatedAt = now
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return domain.Session{}, err
	}

	sess.FirstLogin = false
	sess.UpdatedAt = now
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, err
	}

	return sess, nil
}

// ProfileUpdate is a partial field set; nil fields are left alone.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// UpdateProfile merges the given fields into the current identity, both in
// the directory and in the persisted session.
func (s *SessionService) UpdateProfile(ctx context.Context, update ProfileUpdate) (domain.Session, error) {
	sess, err := s.Resume(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	user, err := s.Users.GetUserByID(ctx, sess.UserID)
	if err != nil {
		return domain.Session{}, err
	}

	if update.Name != nil {
		user.Name = *update.Name
		sess.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
		sess.Email = *update.Email
	}

	now := time.Now().UTC()
	user.UpdatedAt = now
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return domain.Session{}, err
	}

	sess.UpdatedAt = now
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, err
	}

	return sess, nil
}

func (s *SessionService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// ValidatePassword enforces the minimum password policy: at least 8
// characters with at least one letter and one digit. Checked synchronously
// before any store mutation.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
