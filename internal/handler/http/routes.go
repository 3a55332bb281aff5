package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-item-transfer/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.hello)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/registration", h.register)
		r.Post("/registration_p", h.register)
		r.Post("/login", h.login)
	})

	// the transfer protocol verifies the session token itself
	router.Group(func(r chi.Router) {
		r.Use(h.withSessionToken)
		r.Post("/send", h.send)
		r.Get("/get/{params}", h.get)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Delete("/users/{id}", h.deleteUser)

		r.Post("/items/new", h.createItem)
		r.Post("/items/new_p", h.createItem)
		r.Get("/items", h.listItems)
		r.Delete("/items/{id}", h.deleteItem)
	})

	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
