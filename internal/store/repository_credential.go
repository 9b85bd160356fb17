// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/jackc/pgerrcode"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. It handles authentication record creation and
// lookup against the "credentials" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential persists a new credential record and returns the fully
// populated [models.Credential] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential, credential.ID, credential.Email, credential.PasswordHash)

	// create credential in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Credential{}, ErrEmailAlreadyExists
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved credential from db
	if err := row.Scan(&credential.ID, &credential.Email, &credential.PasswordHash, &credential.CreatedAt, &credential.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: scanning error")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Credential{}, ErrEmailAlreadyExists
		}
		return models.Credential{}, err
	}

	return credential, nil
}

// FindCredentialByEmail retrieves the credential record whose email matches
// the given value exactly. Callers normalize the email before lookup.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoCredentialWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var found models.Credential
	row := r.db.QueryRowContext(ctx, findCredentialByEmail, email)

	// find credential by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByEmail").Msg("error: row is nil")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found credential from db
	if err := row.Scan(&found.ID, &found.Email, &found.PasswordHash, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrNoCredentialWasFound
		}
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByEmail").Msg("error: scanning error")
		return models.Credential{}, err
	}

	return found, nil
}

// FindCredentialByID retrieves the credential record by its primary key.
//
// Error handling mirrors [credentialRepository.FindCredentialByEmail].
func (r *credentialRepository) FindCredentialByID(ctx context.Context, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var found models.Credential
	row := r.db.QueryRowContext(ctx, findCredentialByID, credentialID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByID").Msg("error: row is nil")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.ID, &found.Email, &found.PasswordHash, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrNoCredentialWasFound
		}
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByID").Msg("error: scanning error")
		return models.Credential{}, err
	}

	return found, nil
}
