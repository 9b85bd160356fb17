// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/go-chi/chi/v5"
)

// createAddress handles POST /api/addresses (auth required).
// The owner is always the authenticated principal; a client-supplied owner
// is never accepted.
func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalEmail, ok := utils.GetPrincipalEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in request context")
		writeError(w, r, ErrEmptyToken)
		return
	}

	var request models.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}

	address, err := h.services.AddressService.CreateAddress(ctx, principalEmail, request)
	if err != nil {
		log.Err(err).Msg("address creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, address, http.StatusCreated)
}

// getAllAddresses handles GET /api/addresses.
// Supported query parameters: user_id (owner filter), offset, limit.
func (h *Handler) getAllAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.AddressFilter{UserID: r.URL.Query().Get("user_id")}

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

	addresses, err := h.services.AddressService.GetAllAddresses(ctx, filter)
	if err != nil {
		log.Err(err).Msg("address listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, addresses, http.StatusOK)
}

// getAddress handles GET /api/addresses/{id}.
func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	address, err := h.services.AddressService.GetAddress(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("address lookup failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, address, http.StatusOK)
}

// updateAddress handles PATCH /api/addresses/{id} (auth required, owner-only).
// Only the fields present in the body are written.
func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalEmail, ok := utils.GetPrincipalEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in request context")
		writeError(w, r, ErrEmptyToken)
		return
	}

	var update models.AddressUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSONBody)
		return
	}
	update.ID = chi.URLParam(r, "id")

	address, err := h.services.AddressService.UpdateAddress(ctx, principalEmail, update)
	if err != nil {
		log.Err(err).Msg("address update failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, address, http.StatusOK)
}

// deleteAddress handles DELETE /api/addresses/{id} (auth required, owner-only).
func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalEmail, ok := utils.GetPrincipalEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in request context")
		writeError(w, r, ErrEmptyToken)
		return
	}

	if err := h.services.AddressService.DeleteAddress(ctx, principalEmail, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("address deletion failed")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
