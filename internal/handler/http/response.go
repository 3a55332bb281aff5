package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-item-transfer/internal/app"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

func success() models.Response {
	return models.Response{StatusCode: models.StatusSuccess, StatusMessage: app.MsgSuccess}
}

func writeResponse(w http.ResponseWriter, r *http.Request, response models.Response) {
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeResponse").Msg("error writing response")
	}
}

// writeError answers with the envelope of err. Business failures are logged
// at debug, unclassified ones at error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if errors.Is(err, service.ErrInvalidDataProvided) {
		log.Debug().Err(err).Msg("service rejected request data")
		writeValidationError(w, r, models.ValidationIssue{Loc: []string{"body"}, Msg: app.MsgInvalidData})
		return
	}

	response := responseFromError(err)
	if response.StatusCode == StatusUnexpected {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Str("status_code", response.StatusCode).Msg("request failed")
	}

	writeResponse(w, r, response)
}

func writeValidationError(w http.ResponseWriter, r *http.Request, issues ...models.ValidationIssue) {
	body := models.ValidationErrorResponse{Detail: issues}
	if _, err := utils.WriteJSON(w, body, http.StatusUnprocessableEntity); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeValidationError").Msg("error writing response")
	}
}
