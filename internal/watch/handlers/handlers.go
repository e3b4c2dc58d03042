// Package handlers provides HTTP handlers for the watch registry.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/reserves"
	"github.com/aristath/warden/internal/watch"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles watch registry HTTP requests
type Handler struct {
	registry  *watch.Registry
	evaluator *watch.Evaluator
	log       zerolog.Logger
}

// NewHandler creates a new watch handler
func NewHandler(registry *watch.Registry, log zerolog.Logger) *Handler {
	return &Handler{
		registry:  registry,
		evaluator: watch.NewEvaluator(),
		log:       log.With().Str("handler", "watch").Logger(),
	}
}

// HandleRegister handles POST /api/watch
//
// The request supplies either a portfolio snapshot or a reserve profile.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label     string                    `json:"label"`
		Portfolio *domain.PortfolioSnapshot `json:"portfolio"`
		Reserves  *reserves.Input           `json:"reserves"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var (
		entry watch.Entry
		err   error
	)
	switch {
	case req.Portfolio != nil && req.Reserves != nil:
		http.Error(w, "Provide either a portfolio or a reserve profile, not both", http.StatusBadRequest)
		return
	case req.Portfolio != nil:
		entry, err = h.registry.AddPortfolio(req.Label, *req.Portfolio)
	case req.Reserves != nil:
		entry, err = h.registry.AddReserves(req.Label, *req.Reserves)
	default:
		http.Error(w, "Provide a portfolio or a reserve profile", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info().
		Str("entry_id", entry.ID).
		Str("kind", string(entry.Kind)).
		Msg("Watch entry registered")

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data": entry,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleList handles GET /api/watch
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"entries": h.registry.List(),
			"count":   h.registry.Len(),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleStatus handles GET /api/watch/{id}/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, ok := h.registry.Get(id)
	if !ok {
		http.Error(w, "Watch entry not found", http.StatusNotFound)
		return
	}

	status, err := h.evaluator.Evaluate(entry)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": status,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleDelete handles DELETE /api/watch/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.registry.Remove(id) {
		http.Error(w, "Watch entry not found", http.StatusNotFound)
		return
	}

	h.log.Info().Str("entry_id", id).Msg("Watch entry removed")
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps engine errors to HTTP responses
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.log.Error().Err(err).Msg("Watch operation failed")
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
