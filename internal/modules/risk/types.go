// Package risk provides portfolio risk analytics: parametric and historical
// Value-at-Risk, qualitative risk classification, and hedging strategy
// recommendations. Everything in this package is a pure function of its
// inputs; no state outlives a call.
package risk

import "github.com/aristath/warden/internal/domain"

// Level is the qualitative risk tier of a portfolio.
type Level string

const (
	LevelConservative Level = "conservative"
	LevelModerate     Level = "moderate"
	LevelAggressive   Level = "aggressive"
)

// StrategyType identifies a hedging strategy from the fixed catalog.
type StrategyType string

const (
	StrategyDiversification StrategyType = "diversification"
	StrategyProtectivePut   StrategyType = "protective_put"
	StrategyCollar          StrategyType = "collar"
)

// Metrics holds the quantitative risk figures for an assessment.
// ValueAtRisk99 is strictly greater than ValueAtRisk95 whenever volatility
// is positive: a higher confidence level implies a larger tail loss.
type Metrics struct {
	ValueAtRisk95  float64 `json:"value_at_risk_95"`
	ValueAtRisk99  float64 `json:"value_at_risk_99"`
	Volatility     float64 `json:"volatility"`
	ExpectedReturn float64 `json:"expected_return"`
	TimeHorizon    float64 `json:"time_horizon"` // years
}

// HedgingRecommendation is one entry of the advisor's output.
type HedgingRecommendation struct {
	StrategyType StrategyType `json:"strategy_type"`
	Rationale    string       `json:"rationale"`
}

// Assessment is the composite result of a risk assessment.
type Assessment struct {
	RiskLevel         Level                   `json:"risk_level"`
	Recommendations   []string                `json:"recommendations"`
	HedgingStrategies []HedgingRecommendation `json:"hedging_strategies"`
	Metrics           Metrics                 `json:"risk_metrics"`
	EquityShare       float64                 `json:"equity_share"`
}

// Snapshot aliases the shared portfolio snapshot for convenience.
type Snapshot = domain.PortfolioSnapshot
