// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalIDCtxKey is the key used to store the authenticated principal's
// credential identifier in the context. Used together with
// GetPrincipalIDFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalIDCtxKey, "0192d7…")
var PrincipalIDCtxKey = contextKey("principalID")

// PrincipalEmailCtxKey is the key used to store the authenticated principal's
// email in the context.
var PrincipalEmailCtxKey = contextKey("principalEmail")

// GetPrincipalIDFromContext retrieves the authenticated principal's
// identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetPrincipalIDFromContext(ctx context.Context) (string, bool) {
	principalID, ok := ctx.Value(PrincipalIDCtxKey).(string)
	return principalID, ok
}

// GetPrincipalEmailFromContext retrieves the authenticated principal's email
// from the context.
func GetPrincipalEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(PrincipalEmailCtxKey).(string)
	return email, ok
}

// TraceIDCtxKey is the key used to store the per-request trace identifier
// in the context.
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the per-request trace identifier from the
// context. The ok flag is false when no trace identifier was attached.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
