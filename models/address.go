package models

import "time"

// Address is a postal address owned by exactly one user.
// Only the owner may mutate or delete it; the check is enforced by the
// address service, not by storage.
type Address struct {
	// ID is the unique identifier of the address (UUID string).
	ID string `json:"id"`

	// Street is the street name.
	Street string `json:"street"`

	// Number is the building number.
	Number int `json:"number"`

	// City is the city name.
	City string `json:"city"`

	// State is the state or region code.
	State string `json:"state"`

	// ZipCode is the postal code.
	ZipCode string `json:"zip_code"`

	// Country is the country name or code.
	Country string `json:"country"`

	// Complement is an optional unit/apartment qualifier.
	Complement string `json:"complement,omitempty"`

	// Landmark is an optional nearby reference point.
	Landmark string `json:"landmark,omitempty"`

	// UserID is the owner of the address. Non-empty once assigned.
	UserID string `json:"user_id"`

	// CreatedAt is the timestamp when the address was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}

// AddressUpdate describes a partial update of an address record.
// Only non-nil fields are written (partial update support).
type AddressUpdate struct {
	// ID is the unique identifier of the address to update. Required.
	ID string `json:"id"`

	Street     *string `json:"street,omitempty"`
	Number     *int    `json:"number,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	ZipCode    *string `json:"zip_code,omitempty"`
	Country    *string `json:"country,omitempty"`
	Complement *string `json:"complement,omitempty"`
	Landmark   *string `json:"landmark,omitempty"`
}

// AddressFilter narrows list queries over addresses.
// Only unencrypted, indexed columns are filterable.
type AddressFilter struct {
	// UserID filters addresses by owner when non-empty.
	UserID string `json:"user_id,omitempty"`

	// Offset skips the first N records.
	Offset int `json:"offset,omitempty"`

	// Limit caps the number of returned records. Zero means the
	// service default.
	Limit int `json:"limit,omitempty"`
}
