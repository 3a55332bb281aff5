package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the route layer. Each maps to one envelope status
// code; match them with [errors.Is].
var (
	ErrDuplicateValue = errors.New("value already exists")
	ErrNoValueFound   = errors.New("value not found")
	ErrAuthorization  = errors.New("invalid username or password")
	ErrInvalidToken   = errors.New("token failed signature validation")
	ErrOwnership      = errors.New("owned by another user")

	// ErrTransferAlreadyRedeemed is returned only when single-use transfers
	// are switched on.
	ErrTransferAlreadyRedeemed = errors.New("transfer was already redeemed")
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Subjects used in rendered messages.
const (
	SubjectValue = "Value"
	SubjectItem  = "Item"
	SubjectUser  = "User"
)

// ValueError attaches the offending value to an error kind so the route layer
// can render "<Subject> '<Value>' ...". Cause keeps the lower-level error for
// logs.
type ValueError struct {
	Kind    error
	Subject string
	Value   string
	Cause   error
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s '%s': %v: %v", e.Subject, e.Value, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s '%s': %v", e.Subject, e.Value, e.Kind)
}

func (e *ValueError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func duplicateError(value any, cause error) error {
	return &ValueError{Kind: ErrDuplicateValue, Subject: SubjectValue, Value: fmt.Sprint(value), Cause: cause}
}

func notFoundError(value any, cause error) error {
	return &ValueError{Kind: ErrNoValueFound, Subject: SubjectValue, Value: fmt.Sprint(value), Cause: cause}
}

func ownershipError(subject string, value any) error {
	return &ValueError{Kind: ErrOwnership, Subject: subject, Value: fmt.Sprint(value)}
}
