package stats

import (
	"context"
	"math/rand/v2"

	"fprsim/domain/core"
	"fprsim/domain/sim"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSampler draws two-group samples from normal population parameters.
// All randomness comes from the caller-supplied source; the sampler itself
// holds no state between draws.
type NormalSampler struct{}

// NewNormalSampler creates a new normal two-group sampler
func NewNormalSampler() *NormalSampler {
	return &NormalSampler{}
}

// Draw produces participants scores per group, treatment first then control,
// each from its group's normal distribution.
func (s *NormalSampler) Draw(ctx context.Context, spec sim.PopulationSpec, participants int, src rand.Source) (sim.Sample, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if participants < 1 {
		return nil, core.NewInvalidParameterError("participants", "must be >= 1")
	}
	if src == nil {
		return nil, core.NewInvalidParameterError("random source", "must not be nil")
	}

	treatment := distuv.Normal{Mu: spec.MeanTreatment, Sigma: spec.SDTreatment, Src: src}
	control := distuv.Normal{Mu: spec.MeanControl, Sigma: spec.SDControl, Src: src}

	sample := make(sim.Sample, 0, 2*participants)
	for i := 0; i < participants; i++ {
		sample = append(sample, sim.Observation{Group: sim.GroupTreatment, Score: treatment.Rand()})
	}
	for i := 0; i < participants; i++ {
		sample = append(sample, sim.Observation{Group: sim.GroupControl, Score: control.Rand()})
	}
	return sample, nil
}
