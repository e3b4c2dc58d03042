package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers stress testing routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stress", func(r chi.Router) {
		r.Get("/scenarios", h.HandleListScenarios)
		r.Post("/run", h.HandleRunStressTest)
	})
}
