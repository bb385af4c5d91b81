// Package auth verifies the signed identity token carried in the request
// cookie and makes the resulting Identity available to handlers.
//
// The token is an HS256 JWT issued by the external auth service; this
// service only verifies it. The shared secret must be at least 32 bytes in
// production (see config.ValidateForProduction).
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any token that cannot be
// trusted: malformed, bad signature, expired, or missing identity claims.
// Callers must not distinguish these cases to the client.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. Subject carries the user id; Login carries the
// user's login name for logging and the profile aggregate.
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// Codec verifies and signs identity tokens against a server-held secret.
// Verification is pure: no I/O, no clock state beyond the comparison in
// the JWT library.
type Codec struct {
	secret []byte
}

// NewCodec returns a Codec using the given HMAC secret.
func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Verify parses and validates raw and returns the embedded Identity.
// Signature, structure, and expiry failures all yield ErrInvalidToken.
func (c *Codec) Verify(raw string) (Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{},
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}
	if claims.Login == "" {
		return Identity{}, fmt.Errorf("%w: missing login claim", ErrInvalidToken)
	}

	return Identity{ID: id, Login: claims.Login}, nil
}

// Sign issues a token for ident expiring after ttl. Token issuance belongs
// to the external auth service; this method exists for that collaborator's
// shared codec and for tests.
func (c *Codec) Sign(ident Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Login: ident.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}
