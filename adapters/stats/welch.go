package stats

import (
	"context"
	"math"

	"fprsim/domain/core"
	"fprsim/domain/sim"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// WelchTTest applies Welch's unequal-variance, unpaired, two-tailed t-test
type WelchTTest struct{}

// NewWelchTTest creates a new Welch t-test referee
func NewWelchTTest() *WelchTTest {
	return &WelchTTest{}
}

// Name returns the test name
func (t *WelchTTest) Name() string {
	return "welch_ttest"
}

// Test computes the Welch t-statistic and its exact two-tailed p-value and
// thresholds the unrounded p-value with strict less-than. A p-value exactly
// equal to alpha is not significant.
func (t *WelchTTest) Test(ctx context.Context, sample sim.Sample, alpha float64) (sim.TrialOutcome, error) {
	if !(alpha > 0 && alpha < 1) {
		return sim.TrialOutcome{}, core.NewInvalidParameterError("alpha", "must be in (0,1)")
	}

	treatment := sample.Scores(sim.GroupTreatment)
	control := sample.Scores(sim.GroupControl)

	if len(treatment) < 2 {
		return sim.TrialOutcome{}, core.NewDegenerateSampleError(string(sim.GroupTreatment), "has fewer than 2 observations")
	}
	if len(control) < 2 {
		return sim.TrialOutcome{}, core.NewDegenerateSampleError(string(sim.GroupControl), "has fewer than 2 observations")
	}

	mean1, err := mstats.Mean(treatment)
	if err != nil {
		return sim.TrialOutcome{}, err
	}
	mean2, err := mstats.Mean(control)
	if err != nil {
		return sim.TrialOutcome{}, err
	}
	var1, err := mstats.SampleVariance(treatment)
	if err != nil {
		return sim.TrialOutcome{}, err
	}
	var2, err := mstats.SampleVariance(control)
	if err != nil {
		return sim.TrialOutcome{}, err
	}

	if var1 == 0 {
		return sim.TrialOutcome{}, core.NewDegenerateSampleError(string(sim.GroupTreatment), "has zero variance")
	}
	if var2 == 0 {
		return sim.TrialOutcome{}, core.NewDegenerateSampleError(string(sim.GroupControl), "has zero variance")
	}

	n1 := float64(len(treatment))
	n2 := float64(len(control))

	se := math.Sqrt(var1/n1 + var2/n2)
	tStat := (mean1 - mean2) / se

	// Welch-Satterthwaite degrees of freedom
	df := math.Pow(var1/n1+var2/n2, 2) /
		(math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))

	pValue := twoTailedPValue(tStat, df)

	return sim.TrialOutcome{
		PValue:      pValue,
		Significant: pValue < alpha,
	}, nil
}

// twoTailedPValue computes the exact p-value from the Student's t-distribution
func twoTailedPValue(tStat, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - tDist.CDF(math.Abs(tStat)))
}
