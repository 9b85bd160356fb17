package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is the root of every validation failure.
	// Concrete violations are joined onto it, one message per violated
	// field, so the HTTP boundary can match with errors.Is and still
	// surface every message.
	ErrValidationFailed = errors.New("validation failed")

	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email must be a valid address")
	ErrShortPassword   = errors.New("password must be at least 6 characters")
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidCPF      = errors.New("cpf must be exactly 11 digits")
	ErrEmptyStreet     = errors.New("street is required")
	ErrInvalidNumber   = errors.New("number must be positive")
	ErrEmptyCity       = errors.New("city is required")
	ErrEmptyState      = errors.New("state is required")
	ErrEmptyZipCode    = errors.New("zip_code is required")
	ErrEmptyCountry    = errors.New("country is required")
	ErrEmptyToken      = errors.New("refreshToken is required")
	ErrNothingToUpdate = errors.New("at least one field must be provided for update")
)
