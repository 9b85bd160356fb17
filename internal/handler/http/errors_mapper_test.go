// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadastrolabs/cadastro/internal/service"
	"github.com/cadastrolabs/cadastro/internal/store"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation failure", err: validators.ErrValidationFailed, want: http.StatusBadRequest},
		{name: "wrapped validation failure", err: fmt.Errorf("register: %w", validators.ErrValidationFailed), want: http.StatusBadRequest},
		{name: "duplicate email", err: service.ErrEmailAlreadyInUse, want: http.StatusConflict},
		{name: "duplicate user", err: service.ErrUserAlreadyExists, want: http.StatusConflict},
		{name: "bad credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "expired token", err: service.ErrTokenExpired, want: http.StatusUnauthorized},
		{name: "not owner", err: service.ErrNotResourceOwner, want: http.StatusUnauthorized},
		{name: "user missing", err: service.ErrUserNotFound, want: http.StatusNotFound},
		{name: "address missing", err: service.ErrAddressNotFound, want: http.StatusNotFound},
		{name: "query failure", err: fmt.Errorf("list users: %w", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("something unplanned"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_InternalFaultIsRedacted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	writeError(rec, req, fmt.Errorf("scan user row: %w: connection reset", store.ErrScanningRow))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Equal(t, "Internal Server Error", response.Message)
	assert.Equal(t, "Internal Server Error", response.Error)
	assert.NotContains(t, response.Message, "connection reset")
}

func TestWriteError_JoinedValidationErrorsOnOneLine(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
	rec := httptest.NewRecorder()

	err := errors.Join(validators.ErrValidationFailed, errors.New("name is required"), errors.New("cpf must have 11 digits"))
	writeError(rec, req, err)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.NotContains(t, response.Message, "\n")
	assert.Contains(t, response.Message, "name is required")
	assert.Contains(t, response.Message, "cpf must have 11 digits")
	assert.Equal(t, "/api/users", response.Path)
	assert.False(t, response.Timestamp.IsZero())
}

func TestWriteError_EchoesTraceIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.TraceIDCtxKey, "trace-99"))
	rec := httptest.NewRecorder()

	writeError(rec, req, service.ErrUserNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "trace-99", response.TraceID)
}

func TestWriteError_NoTraceIDWithoutContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1", nil)
	rec := httptest.NewRecorder()

	writeError(rec, req, service.ErrUserNotFound)

	response := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Empty(t, response.TraceID)
}
