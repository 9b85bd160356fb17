// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadastrolabs/cadastro/internal/service"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid-token", tokenString)
			return models.Token{
				TokenClaims:  models.TokenClaims{Email: "john@example.com", Type: models.TokenTypeAccess},
				SubjectID:    "cred-1",
				SignedString: tokenString,
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		principalID, ok := utils.GetPrincipalIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "cred-1", principalID)

		email, ok := utils.GetPrincipalEmailFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "john@example.com", email)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.True(t, nextCalled)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "Unauthorized", response.Error)
	assert.Equal(t, "/guarded", response.Path)
}

func TestAuthMiddleware_HeaderWithoutToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenInvalid
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuthMiddleware_MalformedHeader verifies that every malformed header
// shape is rejected with the same sentinel before the token reaches the
// auth service.
func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	headers := []struct {
		name   string
		header string
	}{
		{name: "scheme only", header: "Bearer"},
		{name: "empty token part", header: "Bearer "},
		{name: "no scheme", header: "abc.def.ghi"},
		{name: "too many parts", header: "Bearer abc def"},
	}

	for _, tt := range headers {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
					t.Fatal("auth service must not be reached")
					return models.Token{}, nil
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be reached")
			})

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			response := decodeErrorResponse(t, rec.Body.Bytes())
			assert.Equal(t, ErrInvalidAuthorizationHeader.Error(), response.Message)
		})
	}
}
