// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/go-chi/chi/v5"
)

// createUser handles POST /api/users.
// Registration creates the user, its credential, and its profile atomically
// and returns the sanitized user with 201. A duplicate email or CPF yields 409.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, request)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

// getAllUsers handles GET /api/users.
// Supported query parameters: email (exact match), offset, limit.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.UserFilter{Email: r.URL.Query().Get("email")}

	var err error
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		log.Err(err).Msg("invalid offset parameter")
		writeError(w, r, err)
		return
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		log.Err(err).Msg("invalid limit parameter")
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.GetAllUsers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// searchUser handles GET /api/users/search?id=|cpf=|email=.
// When several parameters are supplied, lookup precedence is id, then cpf,
// then email. A search with no parameter at all yields 404.
func (h *Handler) searchUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	search := models.UserSearch{
		ID:    query.Get("id"),
		CPF:   query.Get("cpf"),
		Email: query.Get("email"),
	}

	user, err := h.services.UserService.FindUser(ctx, search)
	if err != nil {
		log.Err(err).Msg("user search failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// getUser handles GET /api/users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.UserService.FindUser(ctx, models.UserSearch{ID: chi.URLParam(r, "id")})
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateUser handles PATCH /api/users/{id}.
// Only the fields present in the body are written.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}
	update.ID = chi.URLParam(r, "id")

	user, err := h.services.UserService.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Msg("user update failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteUser handles DELETE /api/users/{id}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.UserService.DeleteUser(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("user deletion failed")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an optional numeric query parameter. A missing parameter
// yields zero; a non-numeric or negative value yields errInvalidQueryParam.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errInvalidQueryParam
	}

	return value, nil
}
