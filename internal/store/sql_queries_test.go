// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/cadastrolabs/cadastro/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildFindUserQuery_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		search     models.UserSearch
		wantErr    bool
		wantColumn string
		wantArg    any
	}{
		{
			name:       "success: ID wins over CPF and email",
			search:     models.UserSearch{ID: "user-id", CPF: "12345678901", Email: "john@example.com"},
			wantColumn: "user_id",
			wantArg:    "user-id",
		},
		{
			name:       "success: CPF wins over email",
			search:     models.UserSearch{CPF: "12345678901", Email: "john@example.com"},
			wantColumn: "cpf",
			wantArg:    "12345678901",
		},
		{
			name:       "success: email alone",
			search:     models.UserSearch{Email: "john@example.com"},
			wantColumn: "email",
			wantArg:    "john@example.com",
		},
		{
			name:    "error: empty search",
			search:  models.UserSearch{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserQuery(tt.search)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}

			require.NoError(t, err)
			require.Len(t, args, 1)
			assert.Equal(t, tt.wantArg, args[0])

			q := strings.ToLower(query)
			require.Contains(t, q, "select")
			require.Contains(t, q, "from users")
			require.Contains(t, q, "where")
			require.Contains(t, q, tt.wantColumn+" = $1")
		})
	}
}

func Test_buildFindUserQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildFindUserQuery(models.UserSearch{ID: "user-id"})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"user_id",
		"name",
		"cpf",
		"email",
		"credential_id",
		"profile_id",
		"created_at",
		"updated_at",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildGetAllUsersQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.UserFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: no filter",
			filter: models.UserFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.NotContains(t, q, "where")
				assert.NotContains(t, q, "limit")
				assert.NotContains(t, q, "offset")
				assert.Contains(t, q, "order by created_at")
				require.Empty(t, args)
			},
		},
		{
			name:   "success: email filter",
			filter: models.UserFilter{Email: "john@example.com"},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "where")
				assert.Contains(t, q, "email = $1")
				require.Len(t, args, 1)
				assert.Equal(t, "john@example.com", args[0])
			},
		},
		{
			name:   "success: pagination",
			filter: models.UserFilter{Offset: 20, Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "limit 10")
				assert.Contains(t, q, "offset 20")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetAllUsersQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpdateUserQuery(t *testing.T) {
	name := "Johnny"
	email := "johnny@example.com"

	query, args, err := buildUpdateUserQuery(models.UserUpdate{ID: "user-id", Name: &name, Email: &email})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "updated_at = now()")
	require.Contains(t, q, "name = $1")
	require.Contains(t, q, "email = $2")
	require.Contains(t, q, "user_id = $3")
	require.Contains(t, q, "returning")

	require.Len(t, args, 3)
	assert.Equal(t, name, args[0])
	assert.Equal(t, email, args[1])
	assert.Equal(t, "user-id", args[2])
}

func Test_buildGetAllAddressesQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.AddressFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: owner filter with pagination",
			filter: models.AddressFilter{UserID: "user-id", Offset: 5, Limit: 50},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "from addresses")
				assert.Contains(t, q, "user_id = $1")
				assert.Contains(t, q, "limit 50")
				assert.Contains(t, q, "offset 5")
				require.Len(t, args, 1)
				assert.Equal(t, "user-id", args[0])
			},
		},
		{
			name:   "success: unfiltered list",
			filter: models.AddressFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.NotContains(t, q, "where")
				require.Empty(t, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetAllAddressesQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpdateAddressQuery(t *testing.T) {
	city := "Rio de Janeiro"
	number := 500

	query, args, err := buildUpdateAddressQuery(models.AddressUpdate{ID: "address-id", Number: &number, City: &city})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update addresses")
	require.Contains(t, q, "updated_at = now()")
	require.Contains(t, q, "number = $1")
	require.Contains(t, q, "city = $2")
	require.Contains(t, q, "address_id = $3")
	require.Contains(t, q, "returning")

	require.Len(t, args, 3)
	assert.Equal(t, number, args[0])
	assert.Equal(t, city, args[1])
	assert.Equal(t, "address-id", args[2])
}
