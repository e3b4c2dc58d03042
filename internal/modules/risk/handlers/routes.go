package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all risk analytics routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/risk", func(r chi.Router) {
		r.Post("/var", h.HandleCalculateVaR)
		r.Post("/var/historical", h.HandleHistoricalVaR)
		r.Post("/volatility", h.HandleEstimateVolatility)
		r.Post("/assess", h.HandleAssessRisk)
		r.Post("/hedging", h.HandleRecommendHedges)
	})
}
