package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
)

// tokenHeader carries the raw session token. "Authorization: Bearer <token>"
// is accepted as well.
const tokenHeader = "token"

// auth admits requests with a valid session token.
//
// The token is checked with [service.TokenService.Validate] and then read as
// a session token; the caller id and the raw token are stored in the request
// context. A missing or invalid token is answered with the status 4 envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without usable session token")
			writeError(w, r, service.ErrInvalidToken)
			return
		}

		if err = h.services.TokenService.Validate(token); err != nil {
			writeError(w, r, err)
			return
		}

		session, err := h.services.TokenService.ParseSessionToken(token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUserID(r.Context(), session.UserID)
		ctx = utils.WithToken(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withSessionToken stores the raw session token, if any, in the request
// context without checking it.
func (h *Handler) withSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, err := tokenFromRequest(r); err == nil {
			r = r.WithContext(utils.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest prefers the "token" header over "Authorization".
func tokenFromRequest(r *http.Request) (string, error) {
	if token := r.Header.Get(tokenHeader); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyToken
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
