package testkit

import (
	"context"
	"sort"
	"sync"

	"fprsim/adapters/rng"
	"fprsim/adapters/stats"
	"fprsim/app"
	"fprsim/domain/core"
	"fprsim/domain/sim"
)

// NullSpec returns a population with no treatment effect
func NullSpec() sim.PopulationSpec {
	return sim.PopulationSpec{MeanTreatment: 0, MeanControl: 0, SDTreatment: 1, SDControl: 1}
}

// EffectSpec returns a population whose treatment mean is shifted by effect
// standard deviations relative to control
func EffectSpec(effect float64) sim.PopulationSpec {
	return sim.PopulationSpec{MeanTreatment: effect, MeanControl: 0, SDTreatment: 1, SDControl: 1}
}

// NewSimulationService wires a simulation service from the production
// sampler, Welch test, and PCG streams. Deterministic given a fixed seed.
func NewSimulationService() *app.SimulationService {
	return app.NewSimulationService(stats.NewNormalSampler(), stats.NewWelchTTest(), rng.NewPCGAdapter())
}

// InMemoryResultRepository implements ports.ResultRepository without a database
type InMemoryResultRepository struct {
	mu      sync.RWMutex
	results map[core.RunID]sim.SimulationResult
}

// NewInMemoryResultRepository creates an empty in-memory repository
func NewInMemoryResultRepository() *InMemoryResultRepository {
	return &InMemoryResultRepository{results: make(map[core.RunID]sim.SimulationResult)}
}

// SaveResult stores a copy of the result
func (r *InMemoryResultRepository) SaveResult(ctx context.Context, result *sim.SimulationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.RunID] = *result
	return nil
}

// GetResult retrieves a result by run ID
func (r *InMemoryResultRepository) GetResult(ctx context.Context, id core.RunID) (*sim.SimulationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[id]
	if !ok {
		return nil, core.NewNotFoundError("simulation result", id.String())
	}
	return &result, nil
}

// ListResults returns stored results, newest first
func (r *InMemoryResultRepository) ListResults(ctx context.Context, limit int) ([]sim.SimulationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := make([]sim.SimulationResult, 0, len(r.results))
	for _, result := range r.results {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Count returns the number of stored results
func (r *InMemoryResultRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results)
}
