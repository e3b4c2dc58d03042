package risk

import (
	"strings"
	"testing"

	"github.com/aristath/warden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssess_AggressivePortfolio(t *testing.T) {
	assessor := NewAssessor()

	result, err := assessor.Assess(Snapshot{
		Value: 500000,
		Allocation: domain.AllocationMap{
			"stocks":      0.6,
			"US_LargeCap": 0.2,
			"US_SmallCap": 0.1,
			"bonds":       0.1,
		},
		Volatility:     0.40,
		ExpectedReturn: 0.08,
		HorizonYears:   20,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelAggressive, result.RiskLevel)
	assert.InDelta(t, 0.9, result.EquityShare, 1e-9)

	// The high-volatility warning carries the literal phrase
	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "volatility is high") {
			found = true
		}
	}
	assert.True(t, found, "expected a recommendation containing %q, got %v", "volatility is high", result.Recommendations)

	// Downside protection for a volatile, concentrated portfolio
	hasPut := false
	for _, h := range result.HedgingStrategies {
		if h.StrategyType == StrategyProtectivePut {
			hasPut = true
		}
	}
	assert.True(t, hasPut, "expected protective_put in %v", result.HedgingStrategies)

	assert.Greater(t, result.Metrics.ValueAtRisk99, result.Metrics.ValueAtRisk95)
}

func TestAssess_ConservativePortfolio(t *testing.T) {
	assessor := NewAssessor()

	result, err := assessor.Assess(Snapshot{
		Value: 200000,
		Allocation: domain.AllocationMap{
			"stocks": 0.35,
			"bonds":  0.55,
			"cash":   0.10,
		},
		Volatility:     0.08,
		ExpectedReturn: 0.04,
		HorizonYears:   10,
	})
	require.NoError(t, err)

	assert.Contains(t, []Level{LevelConservative, LevelModerate}, result.RiskLevel)
	require.Len(t, result.HedgingStrategies, 1)
	assert.Equal(t, StrategyDiversification, result.HedgingStrategies[0].StrategyType)
}

func TestAssess_ModeratePortfolio(t *testing.T) {
	assessor := NewAssessor()

	result, err := assessor.Assess(Snapshot{
		Value: 100000,
		Allocation: domain.AllocationMap{
			"stocks": 0.55,
			"bonds":  0.45,
		},
		Volatility:     0.18,
		ExpectedReturn: 0.06,
		HorizonYears:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelModerate, result.RiskLevel)
}

func TestAssess_ShortHorizonGuidance(t *testing.T) {
	assessor := NewAssessor()

	result, err := assessor.Assess(Snapshot{
		Value:        100000,
		Allocation:   domain.AllocationMap{"bonds": 0.8, "cash": 0.2},
		Volatility:   0.05,
		HorizonYears: 3,
	})
	require.NoError(t, err)

	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "horizon") {
			found = true
		}
	}
	assert.True(t, found, "expected short-horizon guidance in %v", result.Recommendations)
}

func TestAssess_InvalidInput(t *testing.T) {
	assessor := NewAssessor()

	_, err := assessor.Assess(Snapshot{
		Value:      0,
		Allocation: domain.AllocationMap{"stocks": 1.0},
		Volatility: 0.2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = assessor.Assess(Snapshot{
		Value:      100000,
		Allocation: domain.AllocationMap{"stocks": -0.5},
		Volatility: 0.2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssess_Idempotent(t *testing.T) {
	assessor := NewAssessor()
	snapshot := Snapshot{
		Value:          100000,
		Allocation:     domain.AllocationMap{"stocks": 0.5, "bonds": 0.5},
		Volatility:     0.15,
		ExpectedReturn: 0.06,
		HorizonYears:   8,
	}

	first, err := assessor.Assess(snapshot)
	require.NoError(t, err)
	second, err := assessor.Assess(snapshot)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEquityShare(t *testing.T) {
	tests := []struct {
		name       string
		allocation map[string]float64
		expected   float64
	}{
		{
			name:       "empty allocation",
			allocation: map[string]float64{},
			expected:   0,
		},
		{
			name:       "plain stocks label",
			allocation: map[string]float64{"stocks": 0.6, "bonds": 0.4},
			expected:   0.6,
		},
		{
			name:       "sub-categories count",
			allocation: map[string]float64{"US_LargeCap": 0.3, "US_SmallCap": 0.2, "bonds": 0.5},
			expected:   0.5,
		},
		{
			name:       "overlapping buckets sum as reported",
			allocation: map[string]float64{"stocks": 0.6, "US_LargeCap": 0.2},
			expected:   0.8,
		},
		{
			name:       "unrecognized labels are opaque",
			allocation: map[string]float64{"crypto": 0.3, "commodities": 0.7},
			expected:   0,
		},
		{
			name:       "equity label variants",
			allocation: map[string]float64{"international_equity": 0.25, "Global Stocks": 0.25},
			expected:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EquityShare(tt.allocation), 1e-9)
		})
	}
}
