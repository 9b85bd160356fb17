// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a well-formed bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned by guarded handlers when the authenticated
	// principal is missing from the request context.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// errInvalidJSONBody is returned when a request body cannot be decoded.
	errInvalidJSONBody = errors.New("invalid JSON was passed")

	// errInvalidQueryParam is returned when a numeric query parameter cannot
	// be parsed.
	errInvalidQueryParam = errors.New("invalid query parameter")
)
