package jwtx

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSAVerifier validates Ed25519-signed tokens against the auth service's
// published public key.
type EdDSAVerifier struct {
	publicKey ed25519.PublicKey
	issuer    string
	audience  []string
}

// NewEdDSAVerifier builds a verifier pinned to one public key. Issuer and
// audience are enforced when non-empty.
func NewEdDSAVerifier(publicKey ed25519.PublicKey, issuer string, audience []string) *EdDSAVerifier {
	return &EdDSAVerifier{
		publicKey: publicKey,
		issuer:    issuer,
		audience:  audience,
	}
}

func (v *EdDSAVerifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, ErrAlgMismatch
		}
		return v.publicKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		default:
			return Claims{}, ErrInvalidSig
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	// Expiry is validated by the authn middleware; issuer and audience are
	// structural and checked here.
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.audience); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// EdDSASigner mints Ed25519-signed tokens. The credits service never signs in
// production; this exists for tests and the local token tool.
type EdDSASigner struct {
	privateKey ed25519.PrivateKey
	issuer     string
}

func NewEdDSASigner(privateKey ed25519.PrivateKey, issuer string) *EdDSASigner {
	return &EdDSASigner{privateKey: privateKey, issuer: issuer}
}

// Sign issues a token for subject with the given scopes and ttl.
func (s *EdDSASigner) Sign(subject string, scopes []string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scopes: scopes,
	}

	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.privateKey)
}

// ParsePublicKey decodes a base64url (no padding) Ed25519 public key as it
// appears in configuration.
func ParsePublicKey(encoded string) (ed25519.PublicKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("jwtx: decode public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("jwtx: public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// EncodePublicKey is the inverse of ParsePublicKey.
func EncodePublicKey(key ed25519.PublicKey) string {
	return base64.RawURLEncoding.EncodeToString(key)
}
