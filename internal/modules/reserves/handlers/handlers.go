// Package handlers provides HTTP handlers for reserve adequacy operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/reserves"
	"github.com/rs/zerolog"
)

// Handler handles reserve adequacy HTTP requests
type Handler struct {
	monitor *reserves.Monitor
	log     zerolog.Logger
}

// NewHandler creates a new reserves handler
func NewHandler(monitor *reserves.Monitor, log zerolog.Logger) *Handler {
	return &Handler{
		monitor: monitor,
		log:     log.With().Str("handler", "reserves").Logger(),
	}
}

// HandleEvaluate handles POST /api/reserves/evaluate
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var input reserves.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	evaluation, err := h.monitor.Evaluate(input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": evaluation,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleScore handles POST /api/reserves/score
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MonthsCoverage float64 `json:"months_coverage"`
		TargetMonths   float64 `json:"target_months"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	score, err := reserves.AdequacyScore(req.MonthsCoverage, req.TargetMonths)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": score,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleSimulate handles POST /api/reserves/simulate
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentReserves     float64 `json:"current_reserves"`
		MonthlyContribution float64 `json:"monthly_contribution"`
		TargetAmount        float64 `json:"target_amount"`
		Months              int     `json:"months"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	simulation, err := reserves.SimulateGrowth(req.CurrentReserves, req.MonthlyContribution, req.TargetAmount, req.Months)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": simulation,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// writeError maps engine errors to HTTP responses
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.log.Error().Err(err).Msg("Reserve evaluation failed")
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
