// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadastrolabs/cadastro/internal/service"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_GuardedRequireToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService:    &mockAuthService{},
		UserService:    &mockUserService{},
		AddressService: &mockAddressService{},
	})
	router := h.Init()

	guarded := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/api/users/user-1"},
		{http.MethodDelete, "/api/users/user-1"},
		{http.MethodPost, "/api/addresses"},
		{http.MethodPatch, "/api/addresses/addr-1"},
		{http.MethodDelete, "/api/addresses/addr-1"},
	}

	for _, route := range guarded {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_PublicAreReachableWithoutToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{},
		UserService: &mockUserService{
			getAllUsersFn: func(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
				return nil, nil
			},
		},
		AddressService: &mockAddressService{
			getAllAddressesFn: func(ctx context.Context, filter models.AddressFilter) ([]models.Address, error) {
				return nil, nil
			},
		},
	})
	router := h.Init()

	public := []string{"/api/users", "/api/addresses", "/ping", "/api/version"}

	for _, path := range public {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRoutes_GuardedRequestFlowsThroughMiddleware(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{
				TokenClaims: models.TokenClaims{Email: "owner@example.com", Type: models.TokenTypeAccess},
				SubjectID:   "cred-1",
			}, nil
		},
	}
	addresses := &mockAddressService{
		deleteAddressFn: func(ctx context.Context, principalEmail string, addressID string) error {
			assert.Equal(t, "owner@example.com", principalEmail)
			assert.Equal(t, "addr-1", addressID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, AddressService: addresses})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/addresses/addr-1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRoutes_TraceIDHeaderIsEchoed(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService:    &mockAuthService{},
		UserService:    &mockUserService{},
		AddressService: &mockAddressService{},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "trace-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_ErrorBodyCarriesTraceID(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService:    &mockAuthService{},
		UserService:    &mockUserService{},
		AddressService: &mockAddressService{},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/addresses/addr-1", nil)
	req.Header.Set("X-Trace-ID", "trace-77")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "trace-77", response.TraceID)
	assert.Equal(t, rec.Header().Get("X-Trace-ID"), response.TraceID)
}
