package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers reserve adequacy routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reserves", func(r chi.Router) {
		r.Post("/evaluate", h.HandleEvaluate)
		r.Post("/score", h.HandleScore)
		r.Post("/simulate", h.HandleSimulate)
	})
}
