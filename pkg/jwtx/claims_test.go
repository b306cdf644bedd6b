package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(
		"member-2",
		"session-9",
		"taskboard",
		"Sarah Scrum",
		"scrum@example.com",
		"Scrum Master",
		time.Hour,
		now,
	)

	require.Equal(t, "member-2", claims.Subject)
	require.Equal(t, "session-9", claims.SID)
	require.Equal(t, "taskboard", claims.Issuer)
	require.Equal(t, "Sarah Scrum", claims.Name)
	require.Equal(t, "scrum@example.com", claims.Email)
	require.Equal(t, "Scrum Master", claims.Role)
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	require.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.NotEmpty(t, claims.ID)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("missing expiry", func(t *testing.T) {
		require.ErrorIs(t, jwtx.Claims{}.ValidateExpiry(), jwtx.ErrExpired)
	})
}

func TestNewJTI(t *testing.T) {
	seen := make(map[string]struct{})
	for range 64 {
		jti := jwtx.NewJTI()
		require.NotEmpty(t, jti)
		_, dup := seen[jti]
		require.False(t, dup, "jti collision")
		seen[jti] = struct{}{}
	}
}
