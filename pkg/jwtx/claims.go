package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens. Sessions
// in the board are long-lived (they emulate a browser session), so this is
// deliberately generous compared to a typical API token.
const DefaultAccessTokenTTL = 12 * time.Hour

// Claims are the access-token claims used by the board service. Keep
// changes additive so older tokens keep verifying.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the persisted session record this token belongs to.
	SID string `json:"sid,omitempty"`

	// Name is the user's display name.
	Name string `json:"name,omitempty"`

	// Email is the user's login email.
	Email string `json:"email,omitempty"`

	// Role is one of the fixed board roles (Admin, Scrum Master, Developer,
	// Tester). Authorization middleware matches on it directly.
	Role string `json:"role,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a session token.
func NewAccessClaims(
	subject, sid string,
	issuer string,
	name, email, role string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:   sid,
		Name:  name,
		Email: email,
		Role:  role,
	}
}

// ValidateExpiry checks the exp claim against the current time.
func (c Claims) ValidateExpiry() error {
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read failing means the platform CSPRNG is broken
		panic("jwtx: failed to generate jti: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
