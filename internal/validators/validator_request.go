package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-item-transfer/models"
)

// JSON field names, also accepted by Validate to scope the check.
const (
	FieldLogin         = "login"
	FieldPassword      = "password"
	FieldName          = "name"
	FieldOwnerID       = "owner_id"
	FieldID            = "id"
	FieldNewOwnerLogin = "new_owner_login"
)

// RequestValidator validates the request bodies of the item transfer API:
// models.Credentials, models.CreateItemRequest and models.SendItemRequest,
// by value or by pointer.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate returns nil or [FieldErrors]. With no fields given every field of
// the request is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.CreateItemRequest:
		return v.validateCreateItem(value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreateItem(*value, fields...)
	case models.SendItemRequest:
		return v.validateSendItem(value, fields...)
	case *models.SendItemRequest:
		return v.validateSendItem(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldLogin:
			errs = appendIf(errs, f, requiredString(c.Login))
		case FieldPassword:
			// passwords are taken verbatim, only presence is checked
			if c.Password == "" {
				errs = append(errs, FieldError{Field: f, Err: ErrFieldRequired})
			}
		default:
			return ErrUnknownField
		}
	}

	return result(errs)
}

func (v *RequestValidator) validateCreateItem(r models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldOwnerID}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldName:
			errs = appendIf(errs, f, requiredString(r.Name))
		case FieldOwnerID:
			if r.OwnerID < 0 {
				errs = append(errs, FieldError{Field: f, Err: ErrNegativeID})
			}
		default:
			return ErrUnknownField
		}
	}

	return result(errs)
}

func (v *RequestValidator) validateSendItem(r models.SendItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldNewOwnerLogin}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID <= 0 {
				errs = append(errs, FieldError{Field: f, Err: ErrNonPositiveID})
			}
		case FieldNewOwnerLogin:
			errs = appendIf(errs, f, requiredString(r.NewOwnerLogin))
		default:
			return ErrUnknownField
		}
	}

	return result(errs)
}

func requiredString(s string) error {
	switch {
	case s == "":
		return ErrFieldRequired
	case strings.TrimSpace(s) == "":
		return ErrBlankValue
	}
	return nil
}

func appendIf(errs FieldErrors, field string, err error) FieldErrors {
	if err == nil {
		return errs
	}
	return append(errs, FieldError{Field: field, Err: err})
}

// result keeps a nil FieldErrors from turning into a non-nil error.
func result(errs FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
