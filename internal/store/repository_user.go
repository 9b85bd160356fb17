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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles identity creation and lookup against the "users" table, plus the
// registration transaction spanning credentials, profiles and users.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// registerAttempts bounds how many times the registration transaction is
// replayed after a transient failure.
const registerAttempts = 3

// RegisterUser creates the credential, profile and user records inside a
// single transaction, so an identity never exists without its authentication
// record. On any failure the whole transaction is rolled back.
//
// Transient failures (serialization conflicts, deadlock rollbacks, dropped
// connections, as decided by the database's [ErrorClassificator]) replay the
// whole transaction up to registerAttempts times.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on credentials → [ErrEmailAlreadyExists].
//   - PostgreSQL unique_violation (23505) on users → [ErrUserAlreadyExists].
//   - Transaction begin/commit failures → [ErrBeginningTransaction] / [ErrCommitingTransaction].
func (r *userRepository) RegisterUser(ctx context.Context, credential models.Credential, profile models.Profile, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		saved models.User
		err   error
	)
	for attempt := 1; attempt <= registerAttempts; attempt++ {
		saved, err = r.registerUserTx(ctx, credential, profile, user)
		if err == nil {
			return saved, nil
		}
		if r.db.errorClassificator.Classify(err) != Retryable {
			return models.User{}, err
		}

		log.Warn().Err(err).Int("attempt", attempt).Str("func", "*userRepository.RegisterUser").Msg("transient DB error, replaying registration transaction")
	}

	return models.User{}, err
}

// registerUserTx runs one attempt of the registration transaction.
func (r *userRepository) registerUserTx(ctx context.Context, credential models.Credential, profile models.Profile, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.registerUserTx").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// create credential
	credRow := tx.QueryRowContext(ctx, createCredential, credential.ID, credential.Email, credential.PasswordHash)
	if err := credRow.Scan(&credential.ID, &credential.Email, &credential.PasswordHash, &credential.CreatedAt, &credential.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.registerUserTx").Msg("error: saving credential")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// create profile
	profileRow := tx.QueryRowContext(ctx, createProfile, profile.ID, profile.Phone, profile.Bio)
	if err := profileRow.Scan(&profile.ID, &profile.Phone, &profile.Bio, &profile.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.registerUserTx").Msg("error: saving profile")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// create user linked to both
	user.CredentialID = credential.ID
	user.ProfileID = profile.ID
	userRow := tx.QueryRowContext(ctx, createUser, user.ID, user.Name, user.CPF, user.Email, user.CredentialID, user.ProfileID)
	savedUser, err := scanUserRow(userRow)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.registerUserTx").Msg("error: saving user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.registerUserTx").Msg("error: cannot commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return savedUser, nil
}

// FindUser retrieves a single user by the first unique attribute set in
// search (ID, then CPF, then Email).
//
// Error handling:
//   - empty search → [ErrBuildingSQLQuery].
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
func (r *userRepository) FindUser(ctx context.Context, search models.UserSearch) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(search)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetAllUsers lists users matching the filter, ordered by creation time.
// An empty result set is returned as an empty slice, not an error.
func (r *userRepository) GetAllUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllUsersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of update to the user record and
// returns the updated row.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser removes the user record by its primary key.
//
// Error handling:
//   - zero affected rows → [ErrNoUserWasFound].
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUserRow scans a full users row. The credential and profile links are
// nullable in the schema, so they go through sql.NullString.
func scanUserRow(row rowScanner) (models.User, error) {
	var (
		user         models.User
		credentialID sql.NullString
		profileID    sql.NullString
	)

	err := row.Scan(&user.ID, &user.Name, &user.CPF, &user.Email, &credentialID, &profileID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.CredentialID = credentialID.String
	user.ProfileID = profileID.String

	return user, nil
}
