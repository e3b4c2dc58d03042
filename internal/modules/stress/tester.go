package stress

import (
	"sort"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/risk"
)

// BucketImpact is the per-asset-class breakdown of one scenario.
type BucketImpact struct {
	Label       string  `json:"label"`
	Fraction    float64 `json:"fraction"`
	Shock       float64 `json:"shock"`
	ValueBefore float64 `json:"value_before"`
	ValueAfter  float64 `json:"value_after"`
}

// Result is the outcome of applying one scenario to a snapshot.
type Result struct {
	ScenarioName string         `json:"scenario_name"`
	ShockedValue float64        `json:"shocked_value"`
	Drawdown     float64        `json:"drawdown"`     // absolute loss from baseline
	DrawdownPct  float64        `json:"drawdown_pct"` // loss as a fraction of baseline
	Buckets      []BucketImpact `json:"buckets"`
	ExceedsVaR95 bool           `json:"exceeds_var_95"`
}

// Report is the outcome of running several scenarios independently against
// the same snapshot. BaselineVaR95 is the one-year 95% parametric VaR of the
// unshocked portfolio, included so scenario losses can be compared against
// the statistical loss estimate.
type Report struct {
	BaselineValue float64  `json:"baseline_value"`
	BaselineVaR95 float64  `json:"baseline_var_95"`
	Results       []Result `json:"results"`
}

// ApplyScenario applies one scenario's shocks to the snapshot's allocation
// buckets. Buckets the scenario does not name keep their value, so the
// shocked total is the baseline plus the signed shock deltas of matching
// buckets. Shock keys absent from the allocation are ignored.
func ApplyScenario(snapshot domain.PortfolioSnapshot, scenario Scenario) (*Result, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	for label, shock := range scenario.Shocks {
		if shock < -1 {
			return nil, domain.Invalidf("shock for %q must not be below -100%%, got %v", label, shock)
		}
	}

	shockedValue := snapshot.Value
	var buckets []BucketImpact

	for _, label := range sortedLabels(snapshot.Allocation) {
		fraction := snapshot.Allocation[label]
		shock, shocked := scenario.Shocks[label]
		if !shocked {
			continue
		}

		before := fraction * snapshot.Value
		after := before * (1 + shock)
		shockedValue += after - before

		buckets = append(buckets, BucketImpact{
			Label:       label,
			Fraction:    fraction,
			Shock:       shock,
			ValueBefore: before,
			ValueAfter:  after,
		})
	}

	drawdown := snapshot.Value - shockedValue

	return &Result{
		ScenarioName: scenario.Name,
		ShockedValue: shockedValue,
		Drawdown:     drawdown,
		DrawdownPct:  drawdown / snapshot.Value,
		Buckets:      buckets,
	}, nil
}

// RunStressTest applies each scenario independently to the same snapshot
// (no scenario composition) and flags scenarios whose loss exceeds the
// portfolio's one-year 95% parametric VaR.
func RunStressTest(snapshot domain.PortfolioSnapshot, scenarios []Scenario) (*Report, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, domain.Invalidf("at least one scenario is required")
	}

	baselineVaR, err := risk.CalculateParametricVaR(snapshot.Value, snapshot.Volatility, 0.95, 252)
	if err != nil {
		return nil, err
	}

	report := &Report{
		BaselineValue: snapshot.Value,
		BaselineVaR95: baselineVaR,
		Results:       make([]Result, 0, len(scenarios)),
	}

	for _, scenario := range scenarios {
		result, err := ApplyScenario(snapshot, scenario)
		if err != nil {
			return nil, err
		}
		result.ExceedsVaR95 = snapshot.Volatility > 0 && result.Drawdown > baselineVaR
		report.Results = append(report.Results, *result)
	}

	return report, nil
}

// sortedLabels returns allocation labels in lexical order so bucket
// breakdowns are reproducible across calls (map iteration is randomized).
func sortedLabels(allocation domain.AllocationMap) []string {
	labels := make([]string, 0, len(allocation))
	for label := range allocation {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
