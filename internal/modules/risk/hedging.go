package risk

// catalogEntry describes one strategy in the fixed hedging catalog along
// with its eligibility rule. The catalog slice order IS the output order:
// recommendations are emitted by iterating the catalog, never by trigger
// insertion order, so identical inputs always produce identical results.
type catalogEntry struct {
	strategy  StrategyType
	eligible  func(level Level, equityShare, volatility float64) bool
	rationale func(level Level, equityShare, volatility float64) string
}

// hedgingCatalog is the versioned, ordered strategy table. Ordering is a
// documented contract: diversification, protective_put, collar.
var hedgingCatalog = []catalogEntry{
	{
		strategy: StrategyDiversification,
		// Baseline strategy: always recommended except for aggressive
		// profiles without concentration, where option strategies take over.
		eligible: func(level Level, equityShare, _ float64) bool {
			return level != LevelAggressive || equityShare > 0.70
		},
		rationale: func(level Level, _, _ float64) string {
			if level == LevelAggressive {
				return "Spreading concentrated equity exposure across asset classes reduces single-factor drawdowns"
			}
			return "Broad diversification is the lowest-cost hedge for this risk profile"
		},
	},
	{
		strategy: StrategyProtectivePut,
		// Downside protection for volatile or concentrated holdings.
		eligible: func(level Level, _, _ float64) bool {
			return level == LevelAggressive
		},
		rationale: func(_ Level, _, _ float64) string {
			return "Protective puts cap downside on volatile or concentrated holdings while keeping upside"
		},
	},
	{
		strategy: StrategyCollar,
		// Intermediate condition: elevated but not extreme exposure, where
		// selling the call offsets the put premium.
		eligible: func(level Level, equityShare, volatility float64) bool {
			switch level {
			case LevelModerate:
				return volatility >= DefaultClassifierConfig().ElevatedVolatility
			case LevelAggressive:
				return equityShare > 0.70
			default:
				return false
			}
		},
		rationale: func(_ Level, _, _ float64) string {
			return "A collar funds downside protection by selling upside above the strike, limiting net premium cost"
		},
	},
}

// RecommendHedges maps a risk profile to an ordered set of hedging strategy
// recommendations. The result is never empty: a conservative profile gets
// exactly the diversification baseline, while higher tiers add option
// strategies. Output order follows the catalog, so repeated calls with
// identical inputs are reproducible.
func RecommendHedges(level Level, equityShare, volatility float64) []HedgingRecommendation {
	var recs []HedgingRecommendation
	for _, entry := range hedgingCatalog {
		if entry.eligible(level, equityShare, volatility) {
			recs = append(recs, HedgingRecommendation{
				StrategyType: entry.strategy,
				Rationale:    entry.rationale(level, equityShare, volatility),
			})
		}
	}

	// The catalog rules guarantee at least one entry, but keep the contract
	// explicit: the advisor never returns an empty list.
	if len(recs) == 0 {
		recs = append(recs, HedgingRecommendation{
			StrategyType: StrategyDiversification,
			Rationale:    "Broad diversification is the lowest-cost hedge for this risk profile",
		})
	}

	return recs
}
