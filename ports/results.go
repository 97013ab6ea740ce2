package ports

import (
	"context"

	"fprsim/domain/core"
	"fprsim/domain/sim"
)

// ResultRepository persists simulation results for later comparison
type ResultRepository interface {
	SaveResult(ctx context.Context, result *sim.SimulationResult) error
	GetResult(ctx context.Context, id core.RunID) (*sim.SimulationResult, error)
	ListResults(ctx context.Context, limit int) ([]sim.SimulationResult, error)
}
