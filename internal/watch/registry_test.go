package watch

import (
	"testing"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/reserves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot() domain.PortfolioSnapshot {
	return domain.PortfolioSnapshot{
		Allocation:     domain.AllocationMap{"stocks": 0.6, "bonds": 0.4},
		Value:          100000,
		Volatility:     0.18,
		ExpectedReturn: 0.07,
		HorizonYears:   10,
	}
}

func validReserveInput() reserves.Input {
	return reserves.Input{
		CurrentReserves: 12000,
		MonthlyExpenses: 2000,
		MonthlyIncome:   5000,
		IncomeStability: reserves.IncomeStable,
		JobSecurity:     reserves.JobSecure,
	}
}

func TestRegistry_AddAndGet(t *testing.T) {
	r := NewRegistry()

	entry, err := r.AddPortfolio("retirement", validSnapshot())
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, KindPortfolio, entry.Kind)
	require.NotNil(t, entry.Portfolio)

	got, ok := r.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "retirement", got.Label)
}

func TestRegistry_AddPortfolio_Invalid(t *testing.T) {
	r := NewRegistry()

	snapshot := validSnapshot()
	snapshot.Value = -1

	_, err := r.AddPortfolio("bad", snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, r.Len())
}

func TestRegistry_AddReserves_Invalid(t *testing.T) {
	r := NewRegistry()

	input := validReserveInput()
	input.MonthlyExpenses = 0

	_, err := r.AddReserves("bad", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, r.Len())
}

func TestRegistry_ListOrdered(t *testing.T) {
	r := NewRegistry()

	first, err := r.AddPortfolio("first", validSnapshot())
	require.NoError(t, err)
	second, err := r.AddReserves("second", validReserveInput())
	require.NoError(t, err)

	entries := r.List()
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()

	entry, err := r.AddPortfolio("temp", validSnapshot())
	require.NoError(t, err)

	assert.True(t, r.Remove(entry.ID))
	assert.False(t, r.Remove(entry.ID))
	_, ok := r.Get(entry.ID)
	assert.False(t, ok)
}
