// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

// Directory handlers answer every domain outcome with 200 and a tagged
// response; only transport and infrastructure failures use error statuses.

func (h *Handler) resolveResource(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.DirectoryService.ResolveOwnResource(r.Context(), callerFromRequest(r))
	if err != nil {
		fail(w, r, err, "error resolving resource")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) retryResourceCreation(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.DirectoryService.RetryResourceCreation(r.Context(), callerFromRequest(r))
	if err != nil {
		fail(w, r, err, "error retrying resource creation")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listSharedIn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.DirectoryService.ListSharedIn(r.Context(), callerFromRequest(r))
	if err != nil {
		fail(w, r, err, "error listing shared files")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) whoAmI(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.DirectoryService.WhoAmI(r.Context(), callerFromRequest(r))
	if err != nil {
		fail(w, r, err, "error resolving caller")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decode(w, r, &req, smallBodyLimit); err != nil {
		fail(w, r, err, "invalid JSON was passed")
		return
	}

	resp, err := h.services.DirectoryService.Register(r.Context(), callerFromRequest(r), req.Username)
	if err != nil {
		fail(w, r, err, "error registering user")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	principal := models.Principal(chi.URLParam(r, "principal"))

	user, err := h.services.DirectoryService.GetUser(r.Context(), principal)
	if err != nil {
		fail(w, r, err, "error getting user")
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

// listUsers reads offset, limit and query from the URL. Numbers that do not
// parse are an invalid query, not a bad request.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	offset, okOffset := intParam(params.Get("offset"))
	limit, okLimit := intParam(params.Get("limit"))
	if !okOffset || !okLimit {
		utils.WriteJSON(w, models.GetUsersResponse{Kind: models.GetUsersInvalidQuery}, http.StatusOK)
		return
	}

	query := models.UsersQuery{Offset: offset, Limit: limit, Query: params.Get("query")}
	resp, err := h.services.DirectoryService.ListUsers(r.Context(), callerFromRequest(r), query)
	if err != nil {
		fail(w, r, err, "error listing users")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

// intParam parses an optional integer parameter; empty means zero.
func intParam(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
