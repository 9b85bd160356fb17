// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
// Compare with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoRefreshToken is returned by Refresh when no refresh token has
	// been retained from a previous Login or Refresh.
	ErrNoRefreshToken = errors.New("no refresh token is stored")
)
