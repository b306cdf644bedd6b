package board_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/stretchr/testify/require"
)

func TestLoginAndMe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	session := login(t, client, adminEmail)
	require.NotEmpty(t, session.Token())
	require.Equal(t, "John Admin", session.Info.Name)
	require.Equal(t, "Admin", session.Info.Role)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "member-1", me.UserID)
	require.Equal(t, adminEmail, me.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	_, err := client.Login(ctx, adminEmail, "wrong-password")
	requireAPIError(t, err, http.StatusUnauthorized, boardsdk.ErrorCodeUnauthorized)

	_, err = client.Login(ctx, "nobody@example.com", "whatever")
	requireAPIError(t, err, http.StatusUnauthorized, boardsdk.ErrorCodeUnauthorized)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	session := login(t, client, scrumEmail)
	require.NoError(t, session.Logout(ctx))

	_, err := session.Me(ctx)
	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSecondLoginReplacesTheFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	first := login(t, client, adminEmail)
	second := login(t, client, scrumEmail)

	// Single-session model: the admin's session record was overwritten, so
	// both tokens now resolve to the scrum master's session.
	me, err := second.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "member-2", me.UserID)

	me, err = first.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "member-2", me.UserID)
}

func TestResetPasswordNeverRevealsAccounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	known, err := client.ResetPassword(ctx, devEmail)
	require.NoError(t, err)
	unknown, err := client.ResetPassword(ctx, "ghost@example.com")
	require.NoError(t, err)

	require.Equal(t, known.Message, unknown.Message)
}

func TestUpdatePasswordClearsFirstLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	// dev@example.com is seeded with the first-login flag set.
	session := login(t, client, devEmail)
	require.True(t, session.Info.FirstLogin)

	info, err := session.UpdatePassword(ctx, "n3wpassword")
	require.NoError(t, err)
	require.False(t, info.FirstLogin)

	// Old password no longer works, new one does.
	_, err = client.Login(ctx, devEmail, "password")
	require.Error(t, err)
	fresh, err := client.Login(ctx, devEmail, "n3wpassword")
	require.NoError(t, err)
	require.False(t, fresh.Info.FirstLogin)
}

func TestUpdatePasswordRejectsWeakPasswords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	session := login(t, client, adminEmail)

	_, err := session.UpdatePassword(ctx, "short1")
	requireAPIError(t, err, http.StatusBadRequest, boardsdk.ErrorCodeInvalidRequest)

	_, err = session.UpdatePassword(ctx, "lettersonly")
	requireAPIError(t, err, http.StatusBadRequest, boardsdk.ErrorCodeInvalidRequest)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	session := login(t, client, scrumEmail)

	name := "Sarah Masters"
	info, err := session.UpdateProfile(ctx, boardsdk.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Sarah Masters", info.Name)
	require.Equal(t, scrumEmail, info.Email)
}

func TestProtectedRoutesRequireAToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	anon := client.NewSessionFromToken("")
	_, err := anon.ListTasks(ctx, "")
	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	forged := client.NewSessionFromToken("definitely-not-a-jwt")
	_, err = forged.ListTasks(ctx, "")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
