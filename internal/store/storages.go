package store

import "github.com/cadastrolabs/cadastro/internal/logger"

// Storages aggregates all repository implementations behind their interfaces.
type Storages struct {
	CredentialRepository CredentialRepository
	UserRepository       UserRepository
	AddressRepository    AddressRepository
}

// NewStorages wires every repository to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
		UserRepository:       NewUserRepository(db, log),
		AddressRepository:    NewAddressRepository(db, log),
	}
}
