package models

import "time"

// Profile holds optional, non-identity attributes of a user.
// It is created together with the user and credential inside a single
// registration transaction.
type Profile struct {
	// ID is the unique identifier of the profile (UUID string).
	ID string `json:"id"`

	// Phone is an optional contact phone number.
	Phone string `json:"phone,omitempty"`

	// Bio is an optional free-form description.
	Bio string `json:"bio,omitempty"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
