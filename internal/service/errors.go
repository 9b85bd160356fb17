package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmailAlreadyInUse is returned when registration targets an email
	// that already has a credential.
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned on any authentication failure:
	// unknown email, wrong password, or a refresh token whose principal no
	// longer exists. The reason is deliberately not disclosed to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired is returned when a token's signature is valid but its
	// expiry claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when a token string cannot be decoded
	// at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenInvalid is returned for every other token verification
	// failure: bad signature, wrong issuer, or wrong token type.
	ErrTokenInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUserAlreadyExists is returned when user creation or update collides
	// with an existing unique email or CPF.
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")

	// ErrNotResourceOwner is returned when the authenticated principal
	// attempts to mutate a resource owned by another user.
	ErrNotResourceOwner = errors.New("principal is not the resource owner")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
