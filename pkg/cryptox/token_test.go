package cryptox_test

import (
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("length matches entropy size", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize128)
		require.NoError(t, err)
		require.Len(t, token, 22)

		token, err = cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.Len(t, token, 43)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := cryptox.GenerateToken(cryptox.TokenSize128)
		require.NoError(t, err)
		b, err := cryptox.GenerateToken(cryptox.TokenSize128)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("non-positive size is rejected", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
		_, err = cryptox.GenerateToken(-1)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	fp := cryptox.FingerprintToken("my-session-token")

	// Deterministic, and never the token itself.
	require.Equal(t, fp, cryptox.FingerprintToken("my-session-token"))
	require.NotEqual(t, fp, cryptox.FingerprintToken("other-token"))
	require.NotEqual(t, "my-session-token", fp)
	require.Len(t, fp, 43) // base64url-encoded SHA-256
}
