// Package handlers provides HTTP handlers for stress testing operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/stress"
	"github.com/rs/zerolog"
)

// Handler handles stress testing HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new stress testing handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "stress").Logger(),
	}
}

// HandleListScenarios handles GET /api/stress/scenarios
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"scenarios": stress.BuiltinScenarios(),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleRunStressTest handles POST /api/stress/run
//
// The request names builtin scenarios, supplies custom ones, or both; with
// neither, the full builtin catalog is run.
func (h *Handler) HandleRunStressTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Snapshot  domain.PortfolioSnapshot `json:"snapshot"`
		Scenarios []string                 `json:"scenarios"`
		Custom    []stress.Scenario        `json:"custom_scenarios"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var scenarios []stress.Scenario
	for _, name := range req.Scenarios {
		scenario, ok := stress.FindBuiltin(name)
		if !ok {
			http.Error(w, "Unknown scenario: "+name, http.StatusBadRequest)
			return
		}
		scenarios = append(scenarios, scenario)
	}
	scenarios = append(scenarios, req.Custom...)
	if len(scenarios) == 0 {
		scenarios = stress.BuiltinScenarios()
	}

	report, err := stress.RunStressTest(req.Snapshot, scenarios)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": report,
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
	h.log.Error().Err(err).Msg("Stress test failed")
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
