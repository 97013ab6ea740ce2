package rng

import (
	"context"
	"math/rand/v2"

	"fprsim/domain/core"
)

// PCGAdapter derives independent PCG streams from a base seed and trial index
type PCGAdapter struct{}

// NewPCGAdapter creates a new PCG stream adapter
func NewPCGAdapter() *PCGAdapter {
	return &PCGAdapter{}
}

// TrialStream returns the deterministic stream for one trial. Distinct trial
// indices seed distinct PCG states, so concurrent trials never interleave
// reads from the same generator.
func (a *PCGAdapter) TrialStream(ctx context.Context, baseSeed int64, trial int) (rand.Source, error) {
	if trial < 0 {
		return nil, core.NewInvalidParameterError("trial", "must be >= 0")
	}
	return rand.NewPCG(uint64(baseSeed), uint64(trial)), nil
}
