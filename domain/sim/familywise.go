package sim

import (
	"math"

	"fprsim/domain/core"
)

// FamilyWiseResult is the analytic probability of at least one false positive
// across K independent tests at per-test Alpha
type FamilyWiseResult struct {
	Alpha float64 `json:"alpha"`
	K     int     `json:"k"`
	Rate  float64 `json:"rate"`
}

// FamilyWiseRate computes 1 - (1-alpha)^k. Pure closed form, no simulation.
// Monotonically increasing in both alpha and k; FamilyWiseRate(alpha, 1) == alpha.
func FamilyWiseRate(alpha float64, k int) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, core.NewInvalidParameterError("alpha", "must be in (0,1)")
	}
	if k < 1 {
		return 0, core.NewInvalidParameterError("k", "must be >= 1")
	}
	return 1 - math.Pow(1-alpha, float64(k)), nil
}

// NewFamilyWiseResult computes the rate and packages it with its inputs
func NewFamilyWiseResult(alpha float64, k int) (FamilyWiseResult, error) {
	rate, err := FamilyWiseRate(alpha, k)
	if err != nil {
		return FamilyWiseResult{}, err
	}
	return FamilyWiseResult{Alpha: alpha, K: k, Rate: rate}, nil
}
