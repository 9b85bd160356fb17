package store

import (
	"context"

	"github.com/cadastrolabs/cadastro/models"
)

// CredentialRepository persists authentication records.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	FindCredentialByEmail(ctx context.Context, email string) (models.Credential, error)
	FindCredentialByID(ctx context.Context, credentialID string) (models.Credential, error)
}

// UserRepository persists user identities and their linked profiles.
type UserRepository interface {
	// RegisterUser creates the credential, profile and user records inside a
	// single transaction. Either all three rows are committed or none.
	RegisterUser(ctx context.Context, credential models.Credential, profile models.Profile, user models.User) (models.User, error)
	FindUser(ctx context.Context, search models.UserSearch) (models.User, error)
	GetAllUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// AddressRepository persists postal addresses owned by users.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	FindAddressByID(ctx context.Context, addressID string) (models.Address, error)
	GetAllAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error)
	UpdateAddress(ctx context.Context, update models.AddressUpdate) (models.Address, error)
	DeleteAddress(ctx context.Context, addressID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
