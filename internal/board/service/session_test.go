package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*SessionService, *memory.Store) {
	t.Helper()

	st := memory.NewSeededStore()
	keys, err := jwtx.NewEphemeralEdDSA("test-1", "taskboard-test")
	require.NoError(t, err)

	return &SessionService{
		Users:    st.Users(),
		Sessions: st.Sessions(),
		Signer:   keys,
		Issuer:   "taskboard-test",
		Delay:    NopDelayer{},
	}, st
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid credentials start a session", func(t *testing.T) {
		svc, st := newSessionService(t)

		result, err := svc.Login(ctx, "admin@example.com", memory.SeedPassword)
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)
		require.Equal(t, "member-1", result.Session.UserID)
		require.Equal(t, "John Admin", result.Session.Name)
		require.False(t, result.Session.FirstLogin)

		// The raw token never lands in the store, only its fingerprint.
		saved, err := st.Sessions().Load(ctx)
		require.NoError(t, err)
		require.Equal(t, cryptox.FingerprintToken(result.Token), saved.TokenFingerprint)
		require.NotEqual(t, result.Token, saved.TokenFingerprint)
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		svc, _ := newSessionService(t)

		result, err := svc.Login(ctx, "Admin@Example.COM", memory.SeedPassword)
		require.NoError(t, err)
		require.Equal(t, "member-1", result.Session.UserID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		svc, _ := newSessionService(t)

		_, errWrong := svc.Login(ctx, "admin@example.com", "nope")
		_, errUnknown := svc.Login(ctx, "nobody@example.com", memory.SeedPassword)

		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	})

	t.Run("failed login leaves existing session untouched", func(t *testing.T) {
		svc, st := newSessionService(t)

		_, err := svc.Login(ctx, "admin@example.com", memory.SeedPassword)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "admin@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		saved, err := st.Sessions().Load(ctx)
		require.NoError(t, err)
		require.Equal(t, "member-1", saved.UserID)
	})

	t.Run("first-login flag carries over from the directory", func(t *testing.T) {
		svc, _ := newSessionService(t)

		result, err := svc.Login(ctx, "dev@example.com", memory.SeedPassword)
		require.NoError(t, err)
		require.True(t, result.Session.FirstLogin)
	})

	t.Run("issued token verifies and carries the identity", func(t *testing.T) {
		st := memory.NewSeededStore()
		keys, err := jwtx.NewEphemeralEdDSA("test-1", "taskboard-test")
		require.NoError(t, err)
		svc := &SessionService{
			Users:    st.Users(),
			Sessions: st.Sessions(),
			Signer:   keys,
			Issuer:   "taskboard-test",
			Delay:    NopDelayer{},
		}

		result, err := svc.Login(ctx, "scrum@example.com", memory.SeedPassword)
		require.NoError(t, err)

		claims, err := keys.Verify(result.Token)
		require.NoError(t, err)
		require.Equal(t, "member-2", claims.Subject)
		require.Equal(t, "Sarah Scrum", claims.Name)
		require.Equal(t, "Scrum Master", claims.Role)
		require.Equal(t, result.Session.ID, claims.SID)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newSessionService(t)

	_, err := svc.Login(ctx, "admin@example.com", memory.SeedPassword)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Resume(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)

	// Logging out twice is fine.
	require.NoError(t, svc.Logout(ctx))
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newSessionService(t)

	require.NoError(t, svc.ResetPassword(ctx, "admin@example.com"))
	require.ErrorIs(t, svc.ResetPassword(ctx, "unknown@example.com"), ErrEmailNotFound)
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("clears first-login on directory and session", func(t *testing.T) {
		svc, st := newSessionService(t)

		_, err := svc.Login(ctx, "dev@example.com", memory.SeedPassword)
		require.NoError(t, err)

		sess, err := svc.UpdatePassword(ctx, "newpass123")
		require.NoError(t, err)
		require.False(t, sess.FirstLogin)

		user, err := st.Users().GetUserByID(ctx, "member-3")
		require.NoError(t, err)
		require.False(t, user.FirstLogin)
		require.NoError(t, cryptox.VerifyPassword("newpass123", user.PasswordHash))

		// The old password no longer works.
		_, err = svc.Login(ctx, "dev@example.com", memory.SeedPassword)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects weak passwords before touching the store", func(t *testing.T) {
		svc, st := newSessionService(t)

		_, err := svc.Login(ctx, "dev@example.com", memory.SeedPassword)
		require.NoError(t, err)

		for _, password := range []string{"short1", "lettersonly", "12345678"} {
			_, err := svc.UpdatePassword(ctx, password)
			require.ErrorIs(t, err, ErrWeakPassword, "password %q", password)
		}

		user, err := st.Users().GetUserByID(ctx, "member-3")
		require.NoError(t, err)
		require.True(t, user.FirstLogin)
	})

	t.Run("requires an active session", func(t *testing.T) {
		svc, _ := newSessionService(t)

		_, err := svc.UpdatePassword(ctx, "newpass123")
		require.ErrorIs(t, err, ErrNotLoggedIn)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("merges fields into directory and session", func(t *testing.T) {
		svc, st := newSessionService(t)

		_, err := svc.Login(ctx, "admin@example.com", memory.SeedPassword)
		require.NoError(t, err)

		name := "Johnathan Admin"
		sess, err := svc.UpdateProfile(ctx, ProfileUpdate{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "Johnathan Admin", sess.Name)
		require.Equal(t, "admin@example.com", sess.Email)

		user, err := st.Users().GetUserByID(ctx, "member-1")
		require.NoError(t, err)
		require.Equal(t, "Johnathan Admin", user.Name)
	})

	t.Run("email change sticks for the next login", func(t *testing.T) {
		svc, _ := newSessionService(t)

		_, err := svc.Login(ctx, "admin@example.com", memory.SeedPassword)
		require.NoError(t, err)

		email := "john@example.com"
		_, err = svc.UpdateProfile(ctx, ProfileUpdate{Email: &email})
		require.NoError(t, err)

		_, err = svc.Login(ctx, "john@example.com", memory.SeedPassword)
		require.NoError(t, err)
		_, err = svc.Login(ctx, "admin@example.com", memory.SeedPassword)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePassword("abcdefg1"))
	require.ErrorIs(t, ValidatePassword("abc1"), ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("abcdefgh"), ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("12345678"), ErrWeakPassword)
}
