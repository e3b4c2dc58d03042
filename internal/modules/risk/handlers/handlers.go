// Package handlers provides HTTP handlers for risk analytics operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/risk"
	"github.com/rs/zerolog"
)

// Handler handles risk analytics HTTP requests
type Handler struct {
	assessor *risk.Assessor
	log      zerolog.Logger
}

// NewHandler creates a new risk handler
func NewHandler(assessor *risk.Assessor, log zerolog.Logger) *Handler {
	return &Handler{
		assessor: assessor,
		log:      log.With().Str("handler", "risk").Logger(),
	}
}

// HandleCalculateVaR handles POST /api/risk/var
func (h *Handler) HandleCalculateVaR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PortfolioValue  float64 `json:"portfolio_value"`
		Volatility      float64 `json:"volatility"`
		ConfidenceLevel float64 `json:"confidence_level"`
		TimeHorizonDays int     `json:"time_horizon_days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	value, err := risk.CalculateParametricVaR(req.PortfolioValue, req.Volatility, req.ConfidenceLevel, req.TimeHorizonDays)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"value_at_risk":     value,
			"confidence_level":  req.ConfidenceLevel,
			"time_horizon_days": req.TimeHorizonDays,
			"method":            "parametric",
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleHistoricalVaR handles POST /api/risk/var/historical
func (h *Handler) HandleHistoricalVaR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PortfolioValue  float64   `json:"portfolio_value"`
		Returns         []float64 `json:"returns"`
		ConfidenceLevel float64   `json:"confidence_level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := risk.CalculateHistoricalVaR(req.PortfolioValue, req.Returns, req.ConfidenceLevel)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"method":    "historical",
		},
	})
}

// HandleEstimateVolatility handles POST /api/risk/volatility
func (h *Handler) HandleEstimateVolatility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prices []float64 `json:"prices"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	volatility, err := risk.EstimateVolatility(req.Prices)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"annualized_volatility": volatility,
			"observations":          len(req.Prices),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleAssessRisk handles POST /api/risk/assess
func (h *Handler) HandleAssessRisk(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.PortfolioSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assessment, err := h.assessor.Assess(snapshot)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": assessment,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleRecommendHedges handles POST /api/risk/hedging
func (h *Handler) HandleRecommendHedges(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RiskLevel   risk.Level `json:"risk_level"`
		EquityShare float64    `json:"equity_share"`
		Volatility  float64    `json:"volatility"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch req.RiskLevel {
	case risk.LevelConservative, risk.LevelModerate, risk.LevelAggressive:
	default:
		http.Error(w, "Unknown risk level", http.StatusBadRequest)
		return
	}

	recs := risk.RecommendHedges(req.RiskLevel, req.EquityShare, req.Volatility)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"hedging_strategies": recs,
		},
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
	h.log.Error().Err(err).Msg("Risk computation failed")
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
