package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides partitioned deterministic random streams.
//
// Every trial must consume its own stream derived from (base seed, trial
// index) so trials stay independent under any scheduling order and a fixed
// seed reproduces the whole run bit for bit. Sharing one unsynchronized
// generator across concurrent trials is the failure mode this port exists
// to prevent.
type RNGPort interface {
	// TrialStream returns the random source for a single trial
	TrialStream(ctx context.Context, baseSeed int64, trial int) (rand.Source, error)
}
