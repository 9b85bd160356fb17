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

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository]. It handles postal address CRUD against the
// "addresses" table.
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAddress persists a new address record and returns the fully populated
// [models.Address] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on user_id → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAddress,
		address.ID, address.Street, address.Number, address.City, address.State,
		address.ZipCode, address.Country, address.Complement, address.Landmark, address.UserID)

	saved, err := scanAddressRow(row)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error: saving address")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Address{}, ErrNoUserWasFound
		default:
			return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindAddressByID retrieves the address record by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoAddressWasFound].
func (r *addressRepository) FindAddressByID(ctx context.Context, addressID string) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAddressByID, addressID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAddressRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrNoAddressWasFound
		}
		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetAllAddresses lists addresses matching the filter, ordered by creation
// time. An empty result set is returned as an empty slice, not an error.
func (r *addressRepository) GetAllAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllAddressesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.GetAllAddresses").Msg("error: building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.GetAllAddresses").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		address, err := scanAddressRow(rows)
		if err != nil {
			log.Err(err).Str("func", "*addressRepository.GetAllAddresses").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.GetAllAddresses").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}

// UpdateAddress applies the non-nil fields of update to the address record
// and returns the updated row.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoAddressWasFound].
func (r *addressRepository) UpdateAddress(ctx context.Context, update models.AddressUpdate) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAddressQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error: building query")
		return models.Address{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanAddressRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrNoAddressWasFound
		}
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error: updating address")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteAddress removes the address record by its primary key.
//
// Error handling:
//   - zero affected rows → [ErrNoAddressWasFound].
func (r *addressRepository) DeleteAddress(ctx context.Context, addressID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAddress, addressID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoAddressWasFound
	}

	return nil
}

// scanAddressRow scans a full addresses row.
func scanAddressRow(row rowScanner) (models.Address, error) {
	var address models.Address

	err := row.Scan(&address.ID, &address.Street, &address.Number, &address.City, &address.State,
		&address.ZipCode, &address.Country, &address.Complement, &address.Landmark,
		&address.UserID, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return models.Address{}, err
	}

	return address, nil
}
