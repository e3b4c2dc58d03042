// Package domain provides core domain models and types.
package domain

// AllocationMap maps an asset-class label to its fraction of portfolio
// value. Fractions are non-negative and are not required to sum to 1.0:
// collectors may report overlapping sub-categories (e.g. both "stocks" and
// "US_LargeCap"). Unrecognized labels are treated as opaque and only used
// for strategy eligibility checks.
type AllocationMap map[string]float64

// PortfolioSnapshot is the engine's view of a portfolio at a point in time.
// It carries no identifiers and no ownership semantics; every analysis is a
// pure function of the snapshot it receives.
type PortfolioSnapshot struct {
	Allocation     AllocationMap `json:"allocation"`
	Value          float64       `json:"value"`
	Volatility     float64       `json:"volatility"`      // annualized stddev of returns, as a fraction
	ExpectedReturn float64       `json:"expected_return"` // annualized, as a fraction
	HorizonYears   float64       `json:"horizon_years"`
}

// Validate checks the snapshot's engine preconditions.
func (s PortfolioSnapshot) Validate() error {
	if s.Value <= 0 {
		return Invalidf("portfolio value must be positive, got %v", s.Value)
	}
	if s.Volatility < 0 {
		return Invalidf("volatility must be non-negative, got %v", s.Volatility)
	}
	for label, fraction := range s.Allocation {
		if fraction < 0 {
			return Invalidf("allocation fraction for %q must be non-negative, got %v", label, fraction)
		}
	}
	return nil
}

// Severity grades an alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a severity-graded signal attached to an evaluation result.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Recommendation pairs an action with its rationale.
type Recommendation struct {
	Action    string `json:"action"`
	Rationale string `json:"rationale"`
}
