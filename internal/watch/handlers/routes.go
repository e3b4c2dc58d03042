package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers watch registry routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/watch", func(r chi.Router) {
		r.Post("/", h.HandleRegister)
		r.Get("/", h.HandleList)
		r.Get("/{id}/status", h.HandleStatus)
		r.Delete("/{id}", h.HandleDelete)
	})
}
