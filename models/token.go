package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// Principal is a cached copy of the "sub" (subject) claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	Principal Principal `json:"-"`
}

// GetPrincipal extracts the caller principal from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetPrincipal() (Principal, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return Anonymous, fmt.Errorf("error extracting principal from token: %w", err)
	}
	if subject == "" {
		return Anonymous, fmt.Errorf("error extracting principal from token: empty subject")
	}

	return Principal(subject), nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
