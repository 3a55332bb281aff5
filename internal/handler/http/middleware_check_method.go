// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
)

type notFoundResponse struct {
	Detail string `json:"detail"`
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A path that exists only under other methods is answered like an unknown
// path, 404 with {"detail":"Not Found"}, so probing methods does not reveal
// which routes exist. Requests the router can serve after all are passed
// back to it.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeNotFound(w, r)
	}
}

// writeNotFound is also the router's NotFound handler.
func writeNotFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, notFoundResponse{Detail: "Not Found"}, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeNotFound").Msg("error writing response")
	}
}
