// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package http

import (
	"net/http"
	"strings"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/app"
	"github.com/go-chi/chi/v5"
)

// routedMethods are the methods checked when building the Allow header.
var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON error body and an Allow header listing the
// methods registered for the requested path. Parameterised patterns are
// matched too, so PATCH /goals/7 reports "GET, PUT, DELETE".
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(routedMethods))
		for _, method := range routedMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
