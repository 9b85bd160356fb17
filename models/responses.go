package models

import "time"

// ErrorResponse is the structured body returned on every failed request.
// The HTTP layer builds it from a typed error and the request path; services
// never construct it themselves.
type ErrorResponse struct {
	// StatusCode duplicates the HTTP status for clients that only read
	// the body.
	StatusCode int `json:"statusCode"`

	// Message is the human-readable description of the failure. For
	// validation failures it carries one message per violated field,
	// joined with "; ".
	Message string `json:"message"`

	// Error is the canonical reason phrase for the status code
	// (e.g. "Conflict", "Unauthorized").
	Error string `json:"error"`

	// Timestamp is the server time at which the error was produced.
	Timestamp time.Time `json:"timestamp"`

	// Path is the request path that produced the error.
	Path string `json:"path"`

	// TraceID correlates the response with the server-side log lines for
	// the same request. Omitted when the request carried no trace context.
	TraceID string `json:"traceId,omitempty"`
}

// RegisterRequest is the body of POST /api/auth.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CreateUserRequest is the body of POST /api/users. Registration creates the
// user, its credential, and its profile atomically.
type CreateUserRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// CreateAddressRequest is the body of POST /api/addresses. The owner is
// always the authenticated principal; it cannot be supplied by the client.
type CreateAddressRequest struct {
	Street     string `json:"street"`
	Number     int    `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
	Complement string `json:"complement,omitempty"`
	Landmark   string `json:"landmark,omitempty"`
}
