// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed client for the cadastro REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/cadastrolabs/cadastro/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the cadastro
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer access token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a standalone credential via POST /api/auth.
	Register(ctx context.Context, request models.RegisterRequest) (models.PublicCredential, error)

	// Login authenticates via POST /api/auth/login. On success the returned
	// access token is stored via SetToken and the refresh token is retained
	// for Refresh.
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)

	// Refresh exchanges the retained refresh token for a new pair via
	// POST /api/auth/refresh and stores the new access token via SetToken.
	Refresh(ctx context.Context) (models.TokenPair, error)

	// CreateUser registers a user together with its credential and profile
	// via POST /api/users.
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.PublicUser, error)

	// GetUser fetches a single user by ID via GET /api/users/{id}.
	GetUser(ctx context.Context, userID string) (models.PublicUser, error)

	// SearchUser looks a user up by ID, CPF, or email via
	// GET /api/users/search.
	SearchUser(ctx context.Context, search models.UserSearch) (models.PublicUser, error)

	// ListUsers fetches a page of users via GET /api/users.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)

	// UpdateUser applies a partial update via PATCH /api/users/{id}.
	// Requires a bearer token.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.PublicUser, error)

	// DeleteUser removes a user via DELETE /api/users/{id}.
	// Requires a bearer token.
	DeleteUser(ctx context.Context, userID string) error

	// CreateAddress adds an address owned by the authenticated principal via
	// POST /api/addresses. Requires a bearer token.
	CreateAddress(ctx context.Context, request models.CreateAddressRequest) (models.Address, error)

	// GetAddress fetches a single address via GET /api/addresses/{id}.
	GetAddress(ctx context.Context, addressID string) (models.Address, error)

	// ListAddresses fetches a page of addresses via GET /api/addresses.
	ListAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error)

	// UpdateAddress applies a partial update via PATCH /api/addresses/{id}.
	// Requires a bearer token; the server enforces ownership.
	UpdateAddress(ctx context.Context, update models.AddressUpdate) (models.Address, error)

	// DeleteAddress removes an address via DELETE /api/addresses/{id}.
	// Requires a bearer token; the server enforces ownership.
	DeleteAddress(ctx context.Context, addressID string) error

	// ServerVersion fetches the server build version via GET /api/version.
	ServerVersion(ctx context.Context) (string, error)
}
