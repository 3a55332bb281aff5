package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-transfer/internal/app"
	"github.com/MKhiriev/go-item-transfer/internal/validators"
	"github.com/MKhiriev/go-item-transfer/models"
)

// decodeRequest reads the JSON body into dst and validates it. On failure it
// has already answered with 422 and returns false.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if issues := decodeBody(r, dst); len(issues) > 0 {
		writeValidationError(w, r, issues...)
		return false
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		writeValidationError(w, r, validationIssues(err)...)
		return false
	}

	return true
}

func decodeBody(r *http.Request, dst any) []models.ValidationIssue {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return []models.ValidationIssue{{Loc: []string{"body"}, Msg: app.MsgFieldRequired}}
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []models.ValidationIssue{{Loc: loc, Msg: typeMessage(typeErr.Type)}}
	default:
		return []models.ValidationIssue{{Loc: []string{"body"}, Msg: app.MsgInvalidJSON}}
	}
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return app.MsgInvalidInteger
	case reflect.String:
		return app.MsgInvalidString
	default:
		return app.MsgInvalidDataType
	}
}

func validationIssues(err error) []models.ValidationIssue {
	var fieldErrs validators.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []models.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error()}}
	}

	issues := make([]models.ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, models.ValidationIssue{Loc: []string{"body", fe.Field}, Msg: fe.Err.Error()})
	}
	return issues
}

// pathID parses the integer route parameter name. On failure it has already
// answered with 422.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeValidationError(w, r, models.ValidationIssue{Loc: []string{"path", name}, Msg: app.MsgInvalidInteger})
		return 0, false
	}
	return id, true
}
