// Package reserves evaluates emergency-fund adequacy: status
// classification, severity-graded alerts, adequacy scoring and growth
// simulation toward a target balance. All functions are pure; results are
// call-scoped value records.
package reserves

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/aristath/warden/internal/domain"
)

// IncomeStability is a closed label set; values are parsed strictly at the
// boundary instead of coerced.
type IncomeStability string

const (
	IncomeStable   IncomeStability = "stable"
	IncomeVariable IncomeStability = "variable"
)

// ParseIncomeStability validates a raw label.
func ParseIncomeStability(raw string) (IncomeStability, error) {
	switch IncomeStability(raw) {
	case IncomeStable, IncomeVariable:
		return IncomeStability(raw), nil
	default:
		return "", domain.Invalidf("unknown income stability %q (want %q or %q)", raw, IncomeStable, IncomeVariable)
	}
}

// JobSecurity is a closed label set; values are parsed strictly at the
// boundary instead of coerced.
type JobSecurity string

const (
	JobSecure JobSecurity = "secure"
	JobAtRisk JobSecurity = "at_risk"
)

// ParseJobSecurity validates a raw label.
func ParseJobSecurity(raw string) (JobSecurity, error) {
	switch JobSecurity(raw) {
	case JobSecure, JobAtRisk:
		return JobSecurity(raw), nil
	default:
		return "", domain.Invalidf("unknown job security %q (want %q or %q)", raw, JobSecure, JobAtRisk)
	}
}

// Status is the ordered reserve adequacy classification:
// CRITICAL < LOW < ADEQUATE < STRONG < EXCELLENT.
type Status int

const (
	StatusCritical Status = iota
	StatusLow
	StatusAdequate
	StatusStrong
	StatusExcellent
)

var statusNames = map[Status]string{
	StatusCritical:  "CRITICAL",
	StatusLow:       "LOW",
	StatusAdequate:  "ADEQUATE",
	StatusStrong:    "STRONG",
	StatusExcellent: "EXCELLENT",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON serializes the status as its name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Input describes the reserve situation under evaluation.
type Input struct {
	CurrentReserves float64         `json:"current_reserves"`
	MonthlyExpenses float64         `json:"monthly_expenses"`
	MonthlyIncome   float64         `json:"monthly_income"`
	HasDependents   bool            `json:"has_dependents"`
	IncomeStability IncomeStability `json:"income_stability"`
	JobSecurity     JobSecurity     `json:"job_security"`
}

// Evaluation is the composite result of a reserve evaluation.
type Evaluation struct {
	ReserveStatus   Status                  `json:"reserve_status"`
	MonthsCoverage  float64                 `json:"months_coverage"`
	TargetMonths    float64                 `json:"target_months"`
	TargetMet       bool                    `json:"target_met"`
	Shortfall       float64                 `json:"shortfall"`
	Alerts          []domain.Alert          `json:"alerts"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Score           Score                   `json:"adequacy_score"`
}

// MonitorConfig holds the target-month baseline, the per-risk-factor
// adjustments, and the status bands (expressed as coverage/target ratios).
// Defaults are the engine's documented behaviour; callers needing different
// thresholds construct a Monitor with their own config.
type MonitorConfig struct {
	BaseTargetMonths     float64
	DependentsAdjustment float64 // added when dependents are present
	IncomeAdjustment     float64 // added when income is not stable
	JobAdjustment        float64 // added when job security is not secure

	CriticalBand float64 // coverage/target below this is CRITICAL
	LowBand      float64 // below this is LOW
	AdequateBand float64 // below this is ADEQUATE (at or above = target met)
	StrongBand   float64 // below this is STRONG, at or above EXCELLENT
}

// DefaultMonitorConfig returns the standard thresholds.
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		BaseTargetMonths:     6.0,
		DependentsAdjustment: 2.0,
		IncomeAdjustment:     1.5,
		JobAdjustment:        1.5,
		CriticalBand:         0.25,
		LowBand:              0.60,
		AdequateBand:         1.0,
		StrongBand:           1.5,
	}
}

// Monitor evaluates reserve adequacy. Stateless; safe for concurrent use.
type Monitor struct {
	cfg MonitorConfig
}

// NewMonitor creates a monitor with the default thresholds.
func NewMonitor() *Monitor {
	return NewMonitorWithConfig(DefaultMonitorConfig())
}

// NewMonitorWithConfig creates a monitor with caller-supplied thresholds.
func NewMonitorWithConfig(cfg MonitorConfig) *Monitor {
	return &Monitor{cfg: cfg}
}

// TargetMonths computes the coverage target for the given risk factors:
// the baseline plus an additive adjustment per factor. Each factor raises
// the target independently.
func (m *Monitor) TargetMonths(hasDependents bool, incomeStability IncomeStability, jobSecurity JobSecurity) float64 {
	target := m.cfg.BaseTargetMonths
	if hasDependents {
		target += m.cfg.DependentsAdjustment
	}
	if incomeStability != IncomeStable {
		target += m.cfg.IncomeAdjustment
	}
	if jobSecurity != JobSecure {
		target += m.cfg.JobAdjustment
	}
	return target
}

// Evaluate classifies reserve adequacy, raises alerts and produces
// recommendations.
//
// Alerts are additive signals, not a projection of the final status: a
// critical alert always accompanies CRITICAL status, and a warning alert is
// raised whenever income is variable or the job is at risk, even when the
// overall status is healthy.
func (m *Monitor) Evaluate(input Input) (*Evaluation, error) {
	if input.MonthlyExpenses <= 0 {
		return nil, domain.Invalidf("monthly expenses must be positive, got %v", input.MonthlyExpenses)
	}
	if input.CurrentReserves < 0 {
		return nil, domain.Invalidf("current reserves must be non-negative, got %v", input.CurrentReserves)
	}
	if input.MonthlyIncome < 0 {
		return nil, domain.Invalidf("monthly income must be non-negative, got %v", input.MonthlyIncome)
	}
	if _, err := ParseIncomeStability(string(input.IncomeStability)); err != nil {
		return nil, err
	}
	if _, err := ParseJobSecurity(string(input.JobSecurity)); err != nil {
		return nil, err
	}

	coverage := input.CurrentReserves / input.MonthlyExpenses
	target := m.TargetMonths(input.HasDependents, input.IncomeStability, input.JobSecurity)
	status := m.classify(coverage, target)
	targetMet := coverage >= target
	shortfall := math.Max(0, target*input.MonthlyExpenses-input.CurrentReserves)

	score, err := AdequacyScore(coverage, target)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		ReserveStatus:   status,
		MonthsCoverage:  coverage,
		TargetMonths:    target,
		TargetMet:       targetMet,
		Shortfall:       shortfall,
		Alerts:          m.alerts(status, input),
		Recommendations: m.recommendations(input, coverage, target, targetMet, shortfall),
		Score:           *score,
	}, nil
}

func (m *Monitor) classify(coverage, target float64) Status {
	ratio := coverage / target
	switch {
	case ratio < m.cfg.CriticalBand:
		return StatusCritical
	case ratio < m.cfg.LowBand:
		return StatusLow
	case ratio < m.cfg.AdequateBand:
		return StatusAdequate
	case ratio < m.cfg.StrongBand:
		return StatusStrong
	default:
		return StatusExcellent
	}
}

func (m *Monitor) alerts(status Status, input Input) []domain.Alert {
	var alerts []domain.Alert

	if status == StatusCritical {
		alerts = append(alerts, domain.Alert{
			Severity: domain.SeverityCritical,
			Message:  "Emergency reserves cover only a small fraction of the target; an income interruption would be felt immediately",
		})
	}
	if input.IncomeStability == IncomeVariable {
		alerts = append(alerts, domain.Alert{
			Severity: domain.SeverityWarning,
			Message:  "Income is variable; reserve drawdowns are harder to replenish between pay cycles",
		})
	}
	if input.JobSecurity == JobAtRisk {
		alerts = append(alerts, domain.Alert{
			Severity: domain.SeverityWarning,
			Message:  "Job security is at risk; the reserve target is raised to absorb a longer income gap",
		})
	}
	if status >= StatusStrong {
		alerts = append(alerts, domain.Alert{
			Severity: domain.SeverityInfo,
			Message:  "Reserves meet or exceed the coverage target",
		})
	}

	return alerts
}

func (m *Monitor) recommendations(input Input, coverage, target float64, targetMet bool, shortfall float64) []domain.Recommendation {
	if targetMet {
		recs := []domain.Recommendation{
			{
				Action:    fmt.Sprintf("Maintain the current reserve level of %.1f months of expenses", coverage),
				Rationale: fmt.Sprintf("Coverage already meets the %.1f-month target for this situation", target),
			},
		}
		if coverage >= target*2 {
			recs = append(recs, domain.Recommendation{
				Action:    "Consider moving reserves beyond twice the target into longer-horizon investments",
				Rationale: "Excess cash beyond a comfortable buffer loses purchasing power to inflation",
			})
		}
		return recs
	}

	recs := []domain.Recommendation{
		{
			Action:    fmt.Sprintf("Build reserves by %.2f to reach the %.1f-month target", shortfall, target),
			Rationale: fmt.Sprintf("Current coverage is %.1f months against a %.1f-month target", coverage, target),
		},
	}

	surplus := input.MonthlyIncome - input.MonthlyExpenses
	if surplus > 0 {
		months := int(math.Ceil(shortfall / surplus))
		recs = append(recs, domain.Recommendation{
			Action:    fmt.Sprintf("Automate a monthly transfer of %.2f into the reserve account", surplus),
			Rationale: fmt.Sprintf("Saving the full income surplus closes the gap in roughly %d months", months),
		})
	} else {
		recs = append(recs, domain.Recommendation{
			Action:    "Review monthly expenses to free up savings capacity",
			Rationale: "Income does not currently exceed expenses, so the reserve gap cannot close without changes",
		})
	}

	return recs
}
