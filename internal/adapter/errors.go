package adapter

import "errors"

// Errors matching the envelope status codes.
var (
	ErrDuplicateValue = errors.New("value already exists")
	ErrNotFound       = errors.New("value not found")
	ErrAuthorization  = errors.New("invalid username or password")
	ErrInvalidToken   = errors.New("invalid token")
	ErrOwnership      = errors.New("owned by another user")
	ErrServer         = errors.New("server error")
)

var (
	// ErrValidation is returned for HTTP 422 answers.
	ErrValidation = errors.New("request validation failed")

	// ErrUnexpectedResponse is returned for any other non-2xx answer or a
	// body that is not an envelope.
	ErrUnexpectedResponse = errors.New("unexpected server response")

	ErrNoToken = errors.New("not logged in: no session token")
)
