// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cadastrolabs/cadastro/models"
)

const (
	createCredential = `INSERT INTO credentials (credential_id, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING credential_id, email, password_hash, created_at, updated_at;`

	findCredentialByEmail = `SELECT credential_id, email, password_hash, created_at, updated_at
    FROM credentials
    WHERE email = $1;`

	findCredentialByID = `SELECT credential_id, email, password_hash, created_at, updated_at
    FROM credentials
    WHERE credential_id = $1;`

	createProfile = `INSERT INTO profiles (profile_id, phone, bio)
    VALUES ($1, $2, $3)
    RETURNING profile_id, phone, bio, created_at;`

	createUser = `INSERT INTO users (user_id, name, cpf, email, credential_id, profile_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, name, cpf, email, credential_id, profile_id, created_at, updated_at;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	createAddress = `INSERT INTO addresses (address_id, street, number, city, state, zip_code, country, complement, landmark, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING address_id, street, number, city, state, zip_code, country, complement, landmark, user_id, created_at, updated_at;`

	findAddressByID = `SELECT address_id, street, number, city, state, zip_code, country, complement, landmark, user_id, created_at, updated_at
    FROM addresses
    WHERE address_id = $1;`

	deleteAddress = `DELETE FROM addresses
    WHERE address_id = $1;`
)

// psql is the shared squirrel builder configured for PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"user_id", "name", "cpf", "email",
	"credential_id", "profile_id", "created_at", "updated_at",
}

var addressColumns = []string{
	"address_id", "street", "number", "city", "state", "zip_code",
	"country", "complement", "landmark", "user_id", "created_at", "updated_at",
}

// buildFindUserQuery builds a single-user lookup from the first unique
// attribute set in search. Precedence is ID, then CPF, then Email.
func buildFindUserQuery(search models.UserSearch) (string, []any, error) {
	builder := psql.Select(userColumns...).From("users")

	switch {
	case search.ID != "":
		builder = builder.Where(sq.Eq{"user_id": search.ID})
	case search.CPF != "":
		builder = builder.Where(sq.Eq{"cpf": search.CPF})
	case search.Email != "":
		builder = builder.Where(sq.Eq{"email": search.Email})
	default:
		return "", nil, fmt.Errorf("%w: no search attribute provided", ErrBuildingSQLQuery)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetAllUsersQuery builds a paginated list query over users, optionally
// narrowed by exact email.
func buildGetAllUsersQuery(filter models.UserFilter) (string, []any, error) {
	builder := psql.Select(userColumns...).
		From("users").
		OrderBy("created_at ASC")

	if filter.Email != "" {
		builder = builder.Where(sq.Eq{"email": filter.Email})
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE over users from the non-nil
// fields of update. At least one field must be set.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": update.ID}).
		Suffix("RETURNING user_id, name, cpf, email, credential_id, profile_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetAllAddressesQuery builds a paginated list query over addresses,
// optionally narrowed by owner.
func buildGetAllAddressesQuery(filter models.AddressFilter) (string, []any, error) {
	builder := psql.Select(addressColumns...).
		From("addresses").
		OrderBy("created_at ASC")

	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateAddressQuery builds a partial UPDATE over addresses from the
// non-nil fields of update.
func buildUpdateAddressQuery(update models.AddressUpdate) (string, []any, error) {
	builder := psql.Update("addresses").Set("updated_at", sq.Expr("NOW()"))

	if update.Street != nil {
		builder = builder.Set("street", *update.Street)
	}
	if update.Number != nil {
		builder = builder.Set("number", *update.Number)
	}
	if update.City != nil {
		builder = builder.Set("city", *update.City)
	}
	if update.State != nil {
		builder = builder.Set("state", *update.State)
	}
	if update.ZipCode != nil {
		builder = builder.Set("zip_code", *update.ZipCode)
	}
	if update.Country != nil {
		builder = builder.Set("country", *update.Country)
	}
	if update.Complement != nil {
		builder = builder.Set("complement", *update.Complement)
	}
	if update.Landmark != nil {
		builder = builder.Set("landmark", *update.Landmark)
	}

	query, args, err := builder.
		Where(sq.Eq{"address_id": update.ID}).
		Suffix("RETURNING address_id, street, number, city, state, zip_code, country, complement, landmark, user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
