package risk

import (
	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/pkg/formulas"
)

// HistoricalResult holds VaR and CVaR derived from an observed return
// series, scaled to the portfolio value.
type HistoricalResult struct {
	ValueAtRisk            float64 `json:"value_at_risk"`
	ConditionalValueAtRisk float64 `json:"conditional_value_at_risk"`
	Confidence             float64 `json:"confidence"`
	Observations           int     `json:"observations"`
}

// CalculateHistoricalVaR estimates VaR and CVaR from a series of observed
// periodic returns instead of a volatility assumption. Complements the
// parametric calculator for callers that have return history.
func CalculateHistoricalVaR(portfolioValue float64, returns []float64, confidence float64) (*HistoricalResult, error) {
	if portfolioValue <= 0 {
		return nil, domain.Invalidf("portfolio value must be positive, got %v", portfolioValue)
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, domain.Invalidf("confidence level must be strictly between 0 and 1, got %v", confidence)
	}
	if len(returns) == 0 {
		return nil, domain.Invalidf("return series must not be empty")
	}

	return &HistoricalResult{
		ValueAtRisk:            formulas.HistoricalVaR(returns, confidence) * portfolioValue,
		ConditionalValueAtRisk: formulas.HistoricalCVaR(returns, confidence) * portfolioValue,
		Confidence:             confidence,
		Observations:           len(returns),
	}, nil
}

// EstimateVolatility derives an annualized volatility from a daily price
// series, for callers that have prices but no volatility assumption to feed
// into the parametric calculator.
func EstimateVolatility(prices []float64) (float64, error) {
	if len(prices) < 2 {
		return 0, domain.Invalidf("at least two prices are required, got %d", len(prices))
	}
	for i, p := range prices {
		if p <= 0 {
			return 0, domain.Invalidf("prices must be positive, got %v at index %d", p, i)
		}
	}

	return formulas.AnnualizedVolatility(formulas.CalculateReturns(prices)), nil
}
