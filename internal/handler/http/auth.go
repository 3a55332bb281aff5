package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-transfer/internal/app"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

type helloResponse struct {
	Data string `json:"data"`
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, helloResponse{Data: app.MsgHello}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.hello").Msg("error writing response")
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !h.decodeRequest(w, r, &credentials) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	response := success()
	response.Data = user
	writeResponse(w, r, response)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !h.decodeRequest(w, r, &credentials) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("login", credentials.Login).Msg("user successfully logged in")

	response := success()
	response.Token = token.String()
	writeResponse(w, r, response)
}
