package models

import "time"

// User represents a registered principal: an identity capable of owning
// resources such as addresses. A user is linked to at most one credential
// and at most one profile.
type User struct {
	// ID is the unique identifier of the user (UUID string). It is the
	// stable identity referenced by owned resources.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CPF is the national identity document number, unique across users.
	CPF string `json:"cpf"`

	// Email is the unique contact email. It mirrors the linked
	// credential's email at registration time.
	Email string `json:"email"`

	// CredentialID links the user to its authentication record.
	// Empty when the user was created without a credential.
	CredentialID string `json:"-"`

	// ProfileID links the user to its optional profile record.
	ProfileID string `json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the sanitized projection of a User returned to clients.
// The credential linkage never appears here, so no serialization path can
// expose authentication data.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the sanitized projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		CPF:       u.CPF,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserUpdate describes a partial update of a user record.
// Only non-nil fields are written.
type UserUpdate struct {
	// ID is the unique identifier of the user to update. Required.
	ID string `json:"id"`

	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Email replaces the contact email when non-nil.
	Email *string `json:"email,omitempty"`
}

// UserSearch identifies a single user by one of its unique attributes.
// When several attributes are set, lookup precedence is ID, then CPF,
// then Email.
type UserSearch struct {
	ID    string `json:"id,omitempty"`
	CPF   string `json:"cpf,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserFilter narrows list queries over users.
type UserFilter struct {
	// Email filters users by exact email when non-empty.
	Email string `json:"email,omitempty"`

	// Offset skips the first N records.
	Offset int `json:"offset,omitempty"`

	// Limit caps the number of returned records. Zero means the
	// service default.
	Limit int `json:"limit,omitempty"`
}
