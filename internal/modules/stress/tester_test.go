package stress

import (
	"testing"

	"github.com/aristath/warden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.PortfolioSnapshot {
	return domain.PortfolioSnapshot{
		Value: 100000,
		Allocation: domain.AllocationMap{
			"stocks": 0.6,
			"bonds":  0.3,
			"cash":   0.1,
		},
		Volatility:   0.18,
		HorizonYears: 10,
	}
}

func TestApplyScenario(t *testing.T) {
	scenario := Scenario{
		Name: "equity_selloff",
		Shocks: map[string]float64{
			"stocks": -0.30,
			"bonds":  -0.05,
		},
	}

	result, err := ApplyScenario(testSnapshot(), scenario)
	require.NoError(t, err)

	// stocks: 60000 -> 42000 (-18000); bonds: 30000 -> 28500 (-1500)
	assert.InDelta(t, 80500, result.ShockedValue, 1e-6)
	assert.InDelta(t, 19500, result.Drawdown, 1e-6)
	assert.InDelta(t, 0.195, result.DrawdownPct, 1e-9)

	// Breakdown covers only shocked buckets, in lexical label order
	require.Len(t, result.Buckets, 2)
	assert.Equal(t, "bonds", result.Buckets[0].Label)
	assert.Equal(t, "stocks", result.Buckets[1].Label)
	assert.InDelta(t, 42000, result.Buckets[1].ValueAfter, 1e-6)
}

func TestApplyScenario_UnmatchedKeysIgnored(t *testing.T) {
	scenario := Scenario{
		Name: "crypto_winter",
		Shocks: map[string]float64{
			"crypto": -0.80, // not held
		},
	}

	result, err := ApplyScenario(testSnapshot(), scenario)
	require.NoError(t, err)

	assert.InDelta(t, 100000, result.ShockedValue, 1e-9)
	assert.Zero(t, result.Drawdown)
	assert.Empty(t, result.Buckets)
}

func TestApplyScenario_PositiveShock(t *testing.T) {
	scenario := Scenario{
		Name:   "commodity_rally",
		Shocks: map[string]float64{"cash": 0.02},
	}

	result, err := ApplyScenario(testSnapshot(), scenario)
	require.NoError(t, err)

	assert.Greater(t, result.ShockedValue, 100000.0)
	assert.Negative(t, result.Drawdown)
}

func TestApplyScenario_InvalidInput(t *testing.T) {
	_, err := ApplyScenario(domain.PortfolioSnapshot{Value: 0}, Scenario{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ApplyScenario(testSnapshot(), Scenario{
		Name:   "impossible",
		Shocks: map[string]float64{"stocks": -1.5},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStressTest(t *testing.T) {
	report, err := RunStressTest(testSnapshot(), BuiltinScenarios())
	require.NoError(t, err)

	assert.InDelta(t, 100000, report.BaselineValue, 1e-9)
	assert.Positive(t, report.BaselineVaR95)
	require.Len(t, report.Results, len(BuiltinScenarios()))

	// Scenarios are applied independently, not chained
	for _, result := range report.Results {
		assert.LessOrEqual(t, result.ShockedValue, report.BaselineValue+1e-9)
	}

	// market_crash loses 0.6*35% + 0.3*5% = 22.5%, far beyond the
	// one-year 95% VaR of an 18%-volatility portfolio (~29.6k vs 22.5k)
	crash := report.Results[0]
	assert.Equal(t, "market_crash", crash.ScenarioName)
	assert.InDelta(t, 22500, crash.Drawdown, 1e-6)
}

func TestRunStressTest_ExceedsVaRFlag(t *testing.T) {
	// Low volatility baseline makes even a moderate shock exceed VaR
	snapshot := testSnapshot()
	snapshot.Volatility = 0.05

	report, err := RunStressTest(snapshot, []Scenario{
		{Name: "mild", Shocks: map[string]float64{"cash": -0.01}},
		{Name: "severe", Shocks: map[string]float64{"stocks": -0.50}},
	})
	require.NoError(t, err)

	assert.False(t, report.Results[0].ExceedsVaR95)
	assert.True(t, report.Results[1].ExceedsVaR95)
}

func TestRunStressTest_InvalidInput(t *testing.T) {
	_, err := RunStressTest(testSnapshot(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFindBuiltin(t *testing.T) {
	scenario, ok := FindBuiltin("rate_shock")
	require.True(t, ok)
	assert.Equal(t, "rate_shock", scenario.Name)

	_, ok = FindBuiltin("no_such_scenario")
	assert.False(t, ok)
}
