// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cadastrolabs/cadastro/internal/service"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asPrincipal stamps the request context the way the auth middleware does
// after a successful token check.
func asPrincipal(r *http.Request, email string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalIDCtxKey, "cred-1")
	ctx = context.WithValue(ctx, utils.PrincipalEmailCtxKey, email)
	return r.WithContext(ctx)
}

// ─────────────────────────────────────────────
// POST /api/addresses
// ─────────────────────────────────────────────

func TestCreateAddress_Success(t *testing.T) {
	addresses := &mockAddressService{
		createAddressFn: func(ctx context.Context, principalEmail string, request models.CreateAddressRequest) (models.Address, error) {
			assert.Equal(t, "owner@example.com", principalEmail)
			assert.Equal(t, "Rua das Flores", request.Street)
			return models.Address{ID: "addr-1", Street: "Rua das Flores", UserID: "user-1"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	body := jsonBody(t, models.CreateAddressRequest{
		Street:  "Rua das Flores",
		Number:  42,
		City:    "São Paulo",
		State:   "SP",
		ZipCode: "01310-100",
		Country: "BR",
	})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/api/addresses", strings.NewReader(body)), "owner@example.com")
	rec := httptest.NewRecorder()

	h.createAddress(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var address models.Address
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &address))
	assert.Equal(t, "addr-1", address.ID)
	assert.Equal(t, "user-1", address.UserID)
}

func TestCreateAddress_NoPrincipal(t *testing.T) {
	h := newTestHandler(t, &service.Services{AddressService: &mockAddressService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/addresses", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.createAddress(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAddress_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AddressService: &mockAddressService{}})

	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/api/addresses", strings.NewReader("{broken")), "owner@example.com")
	rec := httptest.NewRecorder()

	h.createAddress(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/addresses
// ─────────────────────────────────────────────

func TestGetAllAddresses_Success(t *testing.T) {
	addresses := &mockAddressService{
		getAllAddressesFn: func(ctx context.Context, filter models.AddressFilter) ([]models.Address, error) {
			assert.Equal(t, "user-1", filter.UserID)
			assert.Equal(t, 5, filter.Offset)
			assert.Equal(t, 25, filter.Limit)
			return []models.Address{{ID: "addr-1"}, {ID: "addr-2"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := httptest.NewRequest(http.MethodGet, "/api/addresses?user_id=user-1&offset=5&limit=25", nil)
	rec := httptest.NewRecorder()

	h.getAllAddresses(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Address
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
}

func TestGetAllAddresses_NonNumericLimit(t *testing.T) {
	h := newTestHandler(t, &service.Services{AddressService: &mockAddressService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/addresses?limit=ten", nil)
	rec := httptest.NewRecorder()

	h.getAllAddresses(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/addresses/{id}
// ─────────────────────────────────────────────

func TestGetAddress_Success(t *testing.T) {
	addresses := &mockAddressService{
		getAddressFn: func(ctx context.Context, addressID string) (models.Address, error) {
			assert.Equal(t, "addr-1", addressID)
			return models.Address{ID: "addr-1", City: "São Paulo"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/addresses/addr-1", nil), "id", "addr-1")
	rec := httptest.NewRecorder()

	h.getAddress(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var address models.Address
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &address))
	assert.Equal(t, "São Paulo", address.City)
}

func TestGetAddress_NotFound(t *testing.T) {
	addresses := &mockAddressService{
		getAddressFn: func(ctx context.Context, addressID string) (models.Address, error) {
			return models.Address{}, service.ErrAddressNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/addresses/ghost", nil), "id", "ghost")
	rec := httptest.NewRecorder()

	h.getAddress(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// PATCH /api/addresses/{id}
// ─────────────────────────────────────────────

func TestUpdateAddress_Success(t *testing.T) {
	addresses := &mockAddressService{
		updateAddressFn: func(ctx context.Context, principalEmail string, update models.AddressUpdate) (models.Address, error) {
			assert.Equal(t, "owner@example.com", principalEmail)
			assert.Equal(t, "addr-1", update.ID)
			require.NotNil(t, update.City)
			assert.Equal(t, "Curitiba", *update.City)
			return models.Address{ID: "addr-1", City: "Curitiba"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/addresses/addr-1", strings.NewReader(`{"city":"Curitiba"}`)), "id", "addr-1")
	req = asPrincipal(req, "owner@example.com")
	rec := httptest.NewRecorder()

	h.updateAddress(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateAddress_NotOwner(t *testing.T) {
	addresses := &mockAddressService{
		updateAddressFn: func(ctx context.Context, principalEmail string, update models.AddressUpdate) (models.Address, error) {
			return models.Address{}, service.ErrNotResourceOwner
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/addresses/addr-1", strings.NewReader(`{"city":"Curitiba"}`)), "id", "addr-1")
	req = asPrincipal(req, "intruder@example.com")
	rec := httptest.NewRecorder()

	h.updateAddress(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "Unauthorized", response.Error)
}

func TestUpdateAddress_NoPrincipal(t *testing.T) {
	h := newTestHandler(t, &service.Services{AddressService: &mockAddressService{}})

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/addresses/addr-1", strings.NewReader("{}")), "id", "addr-1")
	rec := httptest.NewRecorder()

	h.updateAddress(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/addresses/{id}
// ─────────────────────────────────────────────

func TestDeleteAddress_Success(t *testing.T) {
	addresses := &mockAddressService{
		deleteAddressFn: func(ctx context.Context, principalEmail string, addressID string) error {
			assert.Equal(t, "owner@example.com", principalEmail)
			assert.Equal(t, "addr-1", addressID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/addresses/addr-1", nil), "id", "addr-1")
	req = asPrincipal(req, "owner@example.com")
	rec := httptest.NewRecorder()

	h.deleteAddress(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteAddress_NotOwner(t *testing.T) {
	addresses := &mockAddressService{
		deleteAddressFn: func(ctx context.Context, principalEmail string, addressID string) error {
			return service.ErrNotResourceOwner
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/addresses/addr-1", nil), "id", "addr-1")
	req = asPrincipal(req, "intruder@example.com")
	rec := httptest.NewRecorder()

	h.deleteAddress(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteAddress_NotFound(t *testing.T) {
	addresses := &mockAddressService{
		deleteAddressFn: func(ctx context.Context, principalEmail string, addressID string) error {
			return service.ErrAddressNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AddressService: addresses})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/addresses/ghost", nil), "id", "ghost")
	req = asPrincipal(req, "owner@example.com")
	rec := httptest.NewRecorder()

	h.deleteAddress(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
