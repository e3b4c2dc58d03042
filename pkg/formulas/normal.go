package formulas

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// standardNormal is the unit normal used for quantile lookups. distuv
// distributions are value types and safe for concurrent use.
var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormalQuantile returns the one-sided quantile (z-score) of the standard
// normal distribution for the given probability p in (0, 1).
//
// This is the inverse CDF (probit), so arbitrary confidence levels are
// supported, not just the usual 0.95 / 0.99 pair. Behaviour outside (0, 1)
// is the caller's responsibility; distuv returns ±Inf at the bounds.
func NormalQuantile(p float64) float64 {
	return standardNormal.Quantile(p)
}
