package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldRequired = errors.New("field required")
	ErrBlankValue    = errors.New("ensure this value is not blank")
	ErrNonPositiveID = errors.New("ensure this value is greater than 0")
	ErrNegativeID    = errors.New("ensure this value is greater than or equal to 0")
)

// FieldError reports one invalid field by its JSON name.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors collects every invalid field of one request so all of them are
// reported at once.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, fe := range e {
		errs = append(errs, fe)
	}
	return errs
}
