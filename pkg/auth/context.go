package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Identity is the trusted (id, login) pair derived from a verified credential.
// It is valid for a single request and is never persisted by this service.
type Identity struct {
	ID    uuid.UUID
	Login string
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrIdentityNotFound is returned when no Identity exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrIdentityNotFound = errors.New("identity not found in context")

// IdentityFromCtx extracts the authenticated Identity from the request context.
// Returns ErrIdentityNotFound if no Identity is set (unauthenticated request).
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	ident, ok := ctx.Value(identityKey).(Identity)
	if !ok || ident.ID == uuid.Nil {
		return Identity{}, ErrIdentityNotFound
	}
	return ident, nil
}

// WithIdentity returns a new context with the given Identity attached.
// Used by the authentication middleware after verifying the token cookie.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}
