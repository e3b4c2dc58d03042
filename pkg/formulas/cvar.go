package formulas

import (
	"math"
	"sort"
)

// HistoricalVaR calculates Value at Risk from an observed return series.
// The result is the return at the (1-confidence) percentile of the sorted
// series, expressed as a loss magnitude (positive number). Returns 0 when
// the percentile return is non-negative (no loss in the tail).
//
// Args:
//   - returns: Periodic returns (negative values are losses)
//   - confidence: Confidence level (e.g., 0.95 for 95%)
func HistoricalVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	// For 95% confidence we want the 5th percentile (worst 5%)
	percentile := 1.0 - confidence
	index := int(math.Floor(percentile * float64(len(sorted))))
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	if sorted[index] < 0 {
		return -sorted[index]
	}
	return 0.0
}

// HistoricalCVaR calculates Conditional Value at Risk (expected shortfall)
// at the specified confidence level: the average loss given that the loss
// exceeds the VaR threshold. Expressed as a loss magnitude (positive).
//
// Args:
//   - returns: Periodic returns (negative values are losses)
//   - confidence: Confidence level (e.g., 0.95 for 95%)
func HistoricalCVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	if len(returns) == 1 {
		if returns[0] < 0 {
			return -returns[0]
		}
		return 0.0
	}

	// Sort returns in ascending order (worst first)
	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	tailProbability := 1.0 - confidence
	tailCount := int(math.Ceil(float64(len(sorted)) * tailProbability))

	if tailCount == 0 {
		tailCount = 1
	}
	if tailCount > len(sorted) {
		tailCount = len(sorted)
	}

	// CVaR is the average of returns in the tail
	sum := 0.0
	for _, r := range sorted[:tailCount] {
		sum += r
	}
	avgTail := sum / float64(tailCount)

	if avgTail < 0 {
		return -avgTail
	}
	return 0.0
}
