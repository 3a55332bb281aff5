package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", redactCapability(uri)).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// redactCapability hides the capability of redemption links; anyone holding
// the log line could otherwise replay it.
func redactCapability(uri string) string {
	const prefix = "/get/"
	if strings.HasPrefix(uri, prefix) && len(uri) > len(prefix) {
		return prefix + "***"
	}
	return uri
}
