package ports

import (
	"context"

	"fprsim/domain/sim"
)

// SignificanceTestPort applies a two-sample significance test to one sample
// and reduces it to a trial outcome. The test itself is a black box backed
// by a statistics library.
type SignificanceTestPort interface {
	Name() string
	Test(ctx context.Context, sample sim.Sample, alpha float64) (sim.TrialOutcome, error)
}
