package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/messages", h.handleMessage)
	router.Get("/api/selection", h.getSelection)
	router.Get("/api/version", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
