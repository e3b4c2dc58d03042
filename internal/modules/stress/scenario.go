// Package stress applies named shock scenarios to portfolio snapshots and
// reports the resulting value and drawdown. Like the rest of the analytics
// engine it is pure: scenarios are applied to the snapshot it is given,
// nothing is stored.
package stress

// Scenario is a named set of per-asset-class shock factors. A shock is a
// fractional return applied to the matching allocation bucket's dollar
// value: -0.35 means the bucket loses 35%. Shock keys that do not appear in
// the portfolio's allocation are ignored.
type Scenario struct {
	Name   string             `json:"name"`
	Shocks map[string]float64 `json:"shocks"`
}

// BuiltinScenarios returns the standard scenario catalog, in a fixed order.
// Callers may also construct their own scenarios; the catalog is a starting
// point, not a closed set.
func BuiltinScenarios() []Scenario {
	return []Scenario{
		{
			Name: "market_crash",
			Shocks: map[string]float64{
				"stocks":      -0.35,
				"US_LargeCap": -0.35,
				"US_MidCap":   -0.40,
				"US_SmallCap": -0.45,
				"bonds":       -0.05,
				"real_estate": -0.25,
			},
		},
		{
			Name: "rate_shock",
			Shocks: map[string]float64{
				"bonds":       -0.12,
				"real_estate": -0.15,
				"stocks":      -0.08,
				"US_LargeCap": -0.08,
			},
		},
		{
			Name: "inflation_spike",
			Shocks: map[string]float64{
				"cash":        -0.06,
				"bonds":       -0.10,
				"stocks":      -0.05,
				"commodities": 0.15,
			},
		},
		{
			Name: "flash_crash",
			Shocks: map[string]float64{
				"stocks":      -0.15,
				"US_LargeCap": -0.15,
				"US_SmallCap": -0.20,
			},
		},
	}
}

// FindBuiltin looks up a builtin scenario by name.
func FindBuiltin(name string) (Scenario, bool) {
	for _, s := range BuiltinScenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
