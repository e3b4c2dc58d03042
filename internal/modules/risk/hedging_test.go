package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendHedges_Conservative(t *testing.T) {
	recs := RecommendHedges(LevelConservative, 0.30, 0.08)

	require.Len(t, recs, 1)
	assert.Equal(t, StrategyDiversification, recs[0].StrategyType)
	assert.NotEmpty(t, recs[0].Rationale)
}

func TestRecommendHedges_Moderate(t *testing.T) {
	// Low volatility: baseline only
	recs := RecommendHedges(LevelModerate, 0.50, 0.12)
	require.Len(t, recs, 1)
	assert.Equal(t, StrategyDiversification, recs[0].StrategyType)

	// Elevated volatility adds a collar
	recs = RecommendHedges(LevelModerate, 0.50, 0.20)
	require.Len(t, recs, 2)
	assert.Equal(t, StrategyDiversification, recs[0].StrategyType)
	assert.Equal(t, StrategyCollar, recs[1].StrategyType)
}

func TestRecommendHedges_Aggressive(t *testing.T) {
	// Volatile but not concentrated: protective put only
	recs := RecommendHedges(LevelAggressive, 0.30, 0.35)
	require.Len(t, recs, 1)
	assert.Equal(t, StrategyProtectivePut, recs[0].StrategyType)

	// Concentrated equity: diversification, put and collar, in catalog order
	recs = RecommendHedges(LevelAggressive, 0.90, 0.40)
	require.Len(t, recs, 3)
	assert.Equal(t, StrategyDiversification, recs[0].StrategyType)
	assert.Equal(t, StrategyProtectivePut, recs[1].StrategyType)
	assert.Equal(t, StrategyCollar, recs[2].StrategyType)
}

func TestRecommendHedges_NeverEmpty(t *testing.T) {
	levels := []Level{LevelConservative, LevelModerate, LevelAggressive}
	shares := []float64{0, 0.4, 0.75, 1.0}
	vols := []float64{0, 0.1, 0.3, 0.6}

	for _, level := range levels {
		for _, share := range shares {
			for _, vol := range vols {
				recs := RecommendHedges(level, share, vol)
				assert.NotEmpty(t, recs, "level=%s share=%v vol=%v", level, share, vol)
			}
		}
	}
}

func TestRecommendHedges_Deterministic(t *testing.T) {
	first := RecommendHedges(LevelAggressive, 0.85, 0.30)
	second := RecommendHedges(LevelAggressive, 0.85, 0.30)
	assert.Equal(t, first, second)
}
