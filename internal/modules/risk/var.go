package risk

import (
	"math"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/pkg/formulas"
)

// CalculateParametricVaR computes parametric (variance-covariance)
// Value-at-Risk: the loss magnitude a portfolio is not expected to exceed
// over the horizon at the given confidence level, under a normal-returns
// assumption.
//
// The annualized volatility is scaled to the horizon with
// sqrt(days / 252); 252 trading days is the horizon base everywhere in this
// codebase (see formulas.TradingDaysPerYear), so VaR is monotone in the
// horizon across all call sites. The z-score comes from the standard normal
// inverse CDF, so any confidence level in (0, 1) is accepted, not just
// 0.95 / 0.99.
//
// Guarantees, holding other inputs fixed:
//   - monotonically increasing in confidenceLevel, volatility and horizon
//   - exactly 0 when volatility is 0
func CalculateParametricVaR(portfolioValue, volatility, confidenceLevel float64, timeHorizonDays int) (float64, error) {
	if portfolioValue <= 0 {
		return 0, domain.Invalidf("portfolio value must be positive, got %v", portfolioValue)
	}
	if volatility < 0 {
		return 0, domain.Invalidf("volatility must be non-negative, got %v", volatility)
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return 0, domain.Invalidf("confidence level must be strictly between 0 and 1, got %v", confidenceLevel)
	}
	if timeHorizonDays < 1 {
		return 0, domain.Invalidf("time horizon must be at least 1 day, got %d", timeHorizonDays)
	}

	if volatility == 0 {
		return 0, nil
	}

	horizonVolatility := volatility * math.Sqrt(float64(timeHorizonDays)/formulas.TradingDaysPerYear)
	zScore := formulas.NormalQuantile(confidenceLevel)

	return portfolioValue * horizonVolatility * zScore, nil
}
