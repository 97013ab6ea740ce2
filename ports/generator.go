package ports

import (
	"context"
	"math/rand/v2"

	"fprsim/domain/sim"
)

// SampleGeneratorPort draws one simulated two-group dataset from population
// parameters. The supplied source is the only randomness it may consume.
type SampleGeneratorPort interface {
	Draw(ctx context.Context, spec sim.PopulationSpec, participants int, src rand.Source) (sim.Sample, error)
}
