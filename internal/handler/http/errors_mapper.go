package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-transfer/internal/app"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/models"
)

// Envelope status codes of the error kinds.
const (
	StatusDuplicateValue = "1"
	StatusNoValueFound   = "2"
	StatusAuthorization  = "3"
	StatusInvalidToken   = "4"
	StatusOwnership      = "5"
	StatusUnexpected     = "-1"
)

// errorCodeMap is checked in order; the first kind err matches wins.
var errorCodeMap = []struct {
	kind    error
	code    string
	message func(v *service.ValueError) string
}{
	{service.ErrDuplicateValue, StatusDuplicateValue, func(v *service.ValueError) string {
		return fmt.Sprintf(app.MsgDuplicateValueFormat, v.Value)
	}},
	{service.ErrNoValueFound, StatusNoValueFound, func(v *service.ValueError) string {
		return fmt.Sprintf(app.MsgNoValueFoundFormat, v.Value)
	}},
	{service.ErrAuthorization, StatusAuthorization, func(*service.ValueError) string {
		return app.MsgInvalidLoginPassword
	}},
	{service.ErrInvalidToken, StatusInvalidToken, func(*service.ValueError) string {
		return app.MsgInvalidToken
	}},
	{service.ErrTransferAlreadyRedeemed, StatusInvalidToken, func(*service.ValueError) string {
		return app.MsgTransferAlreadyRedeemed
	}},
	{service.ErrOwnership, StatusOwnership, func(v *service.ValueError) string {
		return fmt.Sprintf(app.MsgOwnershipFormat, v.Subject, v.Value)
	}},
}

// responseFromError renders err as an error envelope. Errors of no known kind
// become status -1 carrying the error text.
func responseFromError(err error) models.Response {
	// left as is when err carries no value
	valueErr := &service.ValueError{Subject: service.SubjectValue}
	errors.As(err, &valueErr)

	for _, entry := range errorCodeMap {
		if errors.Is(err, entry.kind) {
			return models.Response{StatusCode: entry.code, StatusMessage: entry.message(valueErr)}
		}
	}

	return models.Response{
		StatusCode:    StatusUnexpected,
		StatusMessage: fmt.Sprintf(app.MsgUnexpectedFormat, err),
	}
}
