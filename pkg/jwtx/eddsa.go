package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
)

// Signer is anything that can sign session claims into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// EdDSAKeyPair signs and verifies session tokens with a single Ed25519
// keypair. The board generates an ephemeral pair at startup; tokens do not
// outlive a restart, which matches the session model (the persisted session
// slot is the durable record, not the token).
type EdDSAKeyPair struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
}

// NewEphemeralEdDSA generates a fresh Ed25519 keypair for the given issuer.
func NewEphemeralEdDSA(kid, issuer string) (*EdDSAKeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &EdDSAKeyPair{kid: kid, key: priv, pub: pub, issuer: issuer}, nil
}

func (k *EdDSAKeyPair) KID() string { return k.kid }
func (k *EdDSAKeyPair) Alg() string { return jwt.SigningMethodEdDSA.Alg() }

// Sign turns claims into a signed compact JWT string.
func (k *EdDSAKeyPair) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = k.kid
	return t.SignedString(k.key)
}

// Verify parses and validates a compact JWT, enforcing the EdDSA algorithm
// and the configured issuer.
func (k *EdDSAKeyPair) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodEdDSA.Alg() {
			return nil, ErrAlgMismatch
		}
		return k.pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrInvalidSig
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if k.issuer != "" && claims.Issuer != k.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}
