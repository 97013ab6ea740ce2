package app

import (
	"context"
	"log"
	"time"

	"fprsim/domain/core"
	"fprsim/domain/sim"
	"fprsim/ports"
)

// SweepService runs one simulation per participant count, holding the
// population, alpha, and trial count fixed. With a true effect the resulting
// rates trace the power curve.
type SweepService struct {
	simulations *SimulationService
	repository  ports.ResultRepository // optional; nil disables persistence
}

// NewSweepService creates a sweep service
func NewSweepService(simulations *SimulationService, repository ports.ResultRepository) *SweepService {
	return &SweepService{simulations: simulations, repository: repository}
}

// SweepRequest defines a sweep across participant counts
type SweepRequest struct {
	Spec              sim.PopulationSpec `json:"spec"`
	ParticipantCounts []int              `json:"participant_counts"`
	Alpha             float64            `json:"alpha"`
	Trials            int                `json:"trials"`
	Seed              int64              `json:"seed"`
}

// SweepResult contains one simulation result per participant count, in order
type SweepResult struct {
	SweepID   core.SweepID           `json:"sweep_id"`
	Results   []sim.SimulationResult `json:"results"`
	RuntimeMs int64                  `json:"runtime_ms"`
}

// Run executes the sweep sequentially; each point is internally parallel
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	if len(req.ParticipantCounts) == 0 {
		return nil, core.NewInvalidParameterError("participant_counts", "must not be empty")
	}

	start := time.Now()
	sweepID := core.SweepID(core.NewID())
	results := make([]sim.SimulationResult, 0, len(req.ParticipantCounts))

	for idx, participants := range req.ParticipantCounts {
		// Offset the base seed per point so sweep points stay independent
		// while the whole sweep remains reproducible from one seed.
		runReq := RunRequest{
			Spec:         req.Spec,
			Participants: participants,
			Alpha:        req.Alpha,
			Trials:       req.Trials,
			Seed:         req.Seed + int64(idx),
		}

		result, err := s.simulations.Run(ctx, runReq)
		if err != nil {
			return nil, err
		}

		if s.repository != nil {
			if err := s.repository.SaveResult(ctx, result); err != nil {
				return nil, err
			}
		}

		results = append(results, *result)
	}

	sweep := &SweepResult{
		SweepID:   sweepID,
		Results:   results,
		RuntimeMs: time.Since(start).Milliseconds(),
	}

	log.Printf("[SweepService] Sweep %s: %d points in %dms", sweepID, len(results), sweep.RuntimeMs)

	return sweep, nil
}
