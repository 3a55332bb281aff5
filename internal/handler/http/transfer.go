// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

// send starts a transfer. The session token goes to the protocol unverified;
// it checks the token itself.
func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	var request models.SendItemRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	token, _ := utils.GetTokenFromContext(r.Context())

	link, err := h.services.TransferService.InitiateTransfer(r.Context(), token, request.ID, request.NewOwnerLogin)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := success()
	response.URL = link
	writeResponse(w, r, response)
}

// get redeems the capability carried in the last path segment.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	capability, err := url.PathUnescape(chi.URLParam(r, "params"))
	if err != nil {
		writeValidationError(w, r, models.ValidationIssue{Loc: []string{"path", "params"}, Msg: err.Error()})
		return
	}

	token, _ := utils.GetTokenFromContext(r.Context())

	item, err := h.services.TransferService.RedeemTransfer(r.Context(), token, capability)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := success()
	response.Data = item
	writeResponse(w, r, response)
}
