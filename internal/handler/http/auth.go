// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/models"
)

// register handles POST /api/auth.
// It creates an authentication record and returns the sanitized credential
// with 201. A duplicate email yields 409.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}

	credential, err := h.services.AuthService.RegisterCredential(ctx, request)
	if err != nil {
		log.Err(err).Msg("credential registration failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, credential, http.StatusCreated)
}

// login handles POST /api/auth/login.
// It verifies the email/password pair and returns a fresh token pair with
// 200, or 401 on any authentication failure.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}

	pair, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// refresh handles POST /api/auth/refresh.
// It exchanges a valid refresh token for a new token pair with 200.
// An invalid or expired token yields 401; a verified token whose principal
// no longer exists yields 404.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, request)
	if err != nil {
		log.Err(err).Msg("token refresh failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}
