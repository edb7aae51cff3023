// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-file-vault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the caller principal in the context.
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, models.Principal("0192..."))
var PrincipalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the caller principal from the context.
//
// A missing or mistyped value yields [models.Anonymous] and ok == false.
// Handlers that accept anonymous callers can ignore ok.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok || principal.IsAnonymous() {
		return models.Anonymous, false
	}
	return principal, true
}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}
