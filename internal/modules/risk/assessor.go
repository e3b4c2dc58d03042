package risk

import (
	"fmt"
	"strings"
)

// ClassifierConfig holds the threshold constants of the three-tier
// classification rule. The defaults are the engine's documented behaviour;
// callers that need different cutoffs construct an Assessor with their own
// config instead of mutating globals.
type ClassifierConfig struct {
	// AggressiveVolatility is the annualized volatility at or above which a
	// portfolio is aggressive regardless of composition.
	AggressiveVolatility float64
	// ConservativeVolatility is the volatility at or below which a portfolio
	// can be conservative.
	ConservativeVolatility float64
	// AggressiveEquityShare is the equity concentration above which a
	// portfolio is aggressive.
	AggressiveEquityShare float64
	// ConservativeEquityShare is the equity concentration at or below which
	// a portfolio can be conservative.
	ConservativeEquityShare float64
	// ShortHorizonYears is the horizon below which short-horizon guidance is
	// emitted regardless of tier.
	ShortHorizonYears float64
	// ElevatedVolatility triggers the collar strategy for moderate profiles.
	ElevatedVolatility float64
}

// DefaultClassifierConfig returns the standard thresholds.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		AggressiveVolatility:    0.25,
		ConservativeVolatility:  0.10,
		AggressiveEquityShare:   0.70,
		ConservativeEquityShare: 0.40,
		ShortHorizonYears:       5.0,
		ElevatedVolatility:      0.15,
	}
}

// Assessor classifies portfolios into risk tiers and produces composite
// assessments. It is stateless and safe for concurrent use; instantiate as
// many as needed.
type Assessor struct {
	cfg ClassifierConfig
}

// NewAssessor creates an assessor with the default thresholds.
func NewAssessor() *Assessor {
	return NewAssessorWithConfig(DefaultClassifierConfig())
}

// NewAssessorWithConfig creates an assessor with caller-supplied thresholds.
func NewAssessorWithConfig(cfg ClassifierConfig) *Assessor {
	return &Assessor{cfg: cfg}
}

// equitySubCategories are allocation labels recognized as equity-like even
// though they do not contain "stock" or "equity". Lower-cased for matching.
var equitySubCategories = map[string]bool{
	"us_largecap":      true,
	"us_midcap":        true,
	"us_smallcap":      true,
	"international":    true,
	"emerging_markets": true,
	"shares":           true,
}

// EquityShare sums the allocation fractions of equity-like labels: any
// label containing "stock" or "equity", plus the recognized sub-category
// set. Overlapping buckets (e.g. "stocks" plus "US_LargeCap") are summed as
// reported; the share is a concentration signal, not an exact weight.
func EquityShare(allocation map[string]float64) float64 {
	share := 0.0
	for label, fraction := range allocation {
		lower := strings.ToLower(label)
		if strings.Contains(lower, "stock") || strings.Contains(lower, "equity") || equitySubCategories[lower] {
			share += fraction
		}
	}
	return share
}

// Assess computes risk metrics, classifies the portfolio into a tier,
// generates recommendation text and delegates to the hedging advisor.
//
// Classification: aggressive when volatility reaches the aggressive cutoff
// or equity share exceeds its cutoff; conservative when both volatility and
// equity share are low; moderate otherwise. Boundary ties resolve toward
// the higher-risk tier, with volatility dominating equity share.
func (a *Assessor) Assess(snapshot Snapshot) (*Assessment, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	horizonDays := int(snapshot.HorizonYears * 252)
	if horizonDays < 1 {
		horizonDays = 1
	}

	var95, err := CalculateParametricVaR(snapshot.Value, snapshot.Volatility, 0.95, horizonDays)
	if err != nil {
		return nil, err
	}
	var99, err := CalculateParametricVaR(snapshot.Value, snapshot.Volatility, 0.99, horizonDays)
	if err != nil {
		return nil, err
	}

	equityShare := EquityShare(snapshot.Allocation)
	level := a.classify(snapshot.Volatility, equityShare)
	recommendations := a.recommendations(level, snapshot.Volatility, equityShare, snapshot.HorizonYears)

	return &Assessment{
		RiskLevel:         level,
		Recommendations:   recommendations,
		HedgingStrategies: RecommendHedges(level, equityShare, snapshot.Volatility),
		EquityShare:       equityShare,
		Metrics: Metrics{
			ValueAtRisk95:  var95,
			ValueAtRisk99:  var99,
			Volatility:     snapshot.Volatility,
			ExpectedReturn: snapshot.ExpectedReturn,
			TimeHorizon:    snapshot.HorizonYears,
		},
	}, nil
}

func (a *Assessor) classify(volatility, equityShare float64) Level {
	if volatility >= a.cfg.AggressiveVolatility || equityShare > a.cfg.AggressiveEquityShare {
		return LevelAggressive
	}
	if volatility <= a.cfg.ConservativeVolatility && equityShare <= a.cfg.ConservativeEquityShare {
		return LevelConservative
	}
	return LevelModerate
}

func (a *Assessor) recommendations(level Level, volatility, equityShare, horizonYears float64) []string {
	var recs []string

	if volatility >= a.cfg.AggressiveVolatility {
		recs = append(recs, fmt.Sprintf(
			"Portfolio volatility is high (%.0f%% annualized); consider shifting part of the allocation into lower-volatility assets",
			volatility*100))
	}
	if equityShare > a.cfg.AggressiveEquityShare {
		recs = append(recs, fmt.Sprintf(
			"Equity concentration of %.0f%% is elevated; diversify across bonds, cash or other asset classes",
			equityShare*100))
	}
	if horizonYears < a.cfg.ShortHorizonYears {
		recs = append(recs, fmt.Sprintf(
			"With a horizon under %.0f years, keep near-term obligations in stable assets that are not exposed to drawdowns",
			a.cfg.ShortHorizonYears))
	}

	if len(recs) == 0 {
		recs = append(recs, fmt.Sprintf("Allocation and volatility are consistent with a %s risk profile", level))
	}

	return recs
}
