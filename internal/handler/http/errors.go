// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of session token extraction. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyToken is returned when neither the "token" header nor an
	// "Authorization" header is present.
	ErrEmptyToken = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext is returned by handlers behind the auth middleware
	// when the caller id is missing from the request context.
	ErrNoUserInContext = errors.New("no authenticated user in context")
)
