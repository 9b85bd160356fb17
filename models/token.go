package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType tags a token as belonging to the access or refresh flow.
// The tag travels inside the signed claims, so an access token can never be
// redeemed as a refresh token and vice versa.
type TokenType string

const (
	// TokenTypeAccess marks short-lived tokens that authorize API requests.
	TokenTypeAccess TokenType = "access"

	// TokenTypeRefresh marks long-lived tokens exchangeable for a new pair.
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims is the claim set carried by every issued token: the standard
// registered claims plus the principal's email and the token type tag.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the principal's login email, duplicated into the token so
	// guarded handlers can identify the caller without a database lookup.
	Email string `json:"email,omitempty"`

	// Type distinguishes access tokens from refresh tokens.
	Type TokenType `json:"type,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// SubjectID is a cached copy of the "sub" claim: the credential ID of the
// principal the token was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the full claim set.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SubjectID is the principal identifier extracted from the "sub"
	// claim. Internal server-side cache, never serialized.
	SubjectID string `json:"-"`
}

// GetSubjectID extracts the principal identifier from the token's "sub"
// (subject) claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetSubjectID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting subject from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("empty subject in token")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful login or refresh: a short-lived
// access token plus a long-lived refresh token, both in compact form.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
