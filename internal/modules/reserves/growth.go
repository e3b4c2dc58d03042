package reserves

import (
	"github.com/aristath/warden/internal/domain"
)

// Projection is one point of a growth simulation.
type Projection struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

// GrowthSimulation is a finite, deterministic monthly projection of reserve
// growth. TargetReachedMonth is the first month index at which the balance
// reaches the target, or nil when the target is not reached within the
// simulated horizon.
type GrowthSimulation struct {
	Projections        []Projection `json:"projections"`
	TargetReachedMonth *int         `json:"target_reached_month"`
}

// SimulateGrowth projects reserve growth under a fixed monthly
// contribution: month 0 is the current balance and month n adds n
// contributions. Pure linear accumulation, no compounding.
//
// The result always has monthsToSimulate+1 projections (month 0 included).
func SimulateGrowth(currentReserves, monthlyContribution, targetAmount float64, monthsToSimulate int) (*GrowthSimulation, error) {
	if monthsToSimulate < 0 {
		return nil, domain.Invalidf("months to simulate must be non-negative, got %d", monthsToSimulate)
	}
	if monthlyContribution < 0 {
		return nil, domain.Invalidf("monthly contribution must be non-negative, got %v", monthlyContribution)
	}
	if currentReserves < 0 {
		return nil, domain.Invalidf("current reserves must be non-negative, got %v", currentReserves)
	}
	if targetAmount < 0 {
		return nil, domain.Invalidf("target amount must be non-negative, got %v", targetAmount)
	}

	sim := &GrowthSimulation{
		Projections: make([]Projection, 0, monthsToSimulate+1),
	}

	for month := 0; month <= monthsToSimulate; month++ {
		balance := currentReserves + monthlyContribution*float64(month)
		sim.Projections = append(sim.Projections, Projection{Month: month, Balance: balance})

		if sim.TargetReachedMonth == nil && balance >= targetAmount {
			m := month
			sim.TargetReachedMonth = &m
		}
	}

	return sim, nil
}
