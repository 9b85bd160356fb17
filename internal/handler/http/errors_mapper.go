// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cadastrolabs/cadastro/internal/service"
	"github.com/cadastrolabs/cadastro/internal/store"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/internal/validators"
	"github.com/cadastrolabs/cadastro/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidationFailed: http.StatusBadRequest,
	errInvalidJSONBody:             http.StatusBadRequest,
	errInvalidQueryParam:           http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmailAlreadyInUse:   http.StatusConflict,
	service.ErrUserAlreadyExists:   http.StatusConflict,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenMalformed:      http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrNotResourceOwner:    http.StatusUnauthorized,
	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrAddressNotFound:     http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	// unexpected storage failures are internal faults, never client errors
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommitingTransaction:  http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts a typed error into the structured error body
// {statusCode, message, error, timestamp, path, traceId} and writes it with
// the status resolved from errorStatusMap.
//
// Internal faults (HTTP 5xx) never leak their cause: the message is replaced
// with the canonical reason phrase.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := errorMessage(err)
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	traceID, _ := utils.GetTraceIDFromContext(r.Context())

	response := models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
		Timestamp:  time.Now().UTC(),
		Path:       r.URL.Path,
		TraceID:    traceID,
	}

	utils.WriteJSON(w, response, status)
}

// errorMessage flattens a (possibly joined) error into a single-line message
// with one fragment per violated field.
func errorMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
