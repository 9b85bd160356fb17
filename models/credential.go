package models

import "time"

// Credential is the authentication record bound to a principal.
// It holds the login email and the bcrypt hash of the password.
// The hash must never cross a trust boundary: it is excluded from JSON and
// only compared inside the auth service.
type Credential struct {
	// ID is the unique identifier of the credential (UUID string).
	// It is also the subject ("sub") claim of every token issued for
	// this principal.
	ID string `json:"id"`

	// Email is the unique, case-normalized login identifier.
	// Normalization (trim + lowercase) happens before any lookup or insert.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized, never logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the credential was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every password change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// PublicCredential is the sanitized projection of a Credential returned to
// clients. It structurally excludes the password hash, so a credential can
// never leak through serialization of the wrong type.
type PublicCredential struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the sanitized projection of the credential.
func (c Credential) Public() PublicCredential {
	return PublicCredential{
		ID:        c.ID,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
