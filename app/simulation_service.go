package app

import (
	"context"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"fprsim/domain/core"
	"fprsim/domain/sim"
	"fprsim/ports"

	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives completed and total trial counts. Side effect only;
// it never influences the returned result.
type ProgressFunc func(done, total int)

// SimulationService runs Monte Carlo false-positive-rate simulations
type SimulationService struct {
	generator ports.SampleGeneratorPort
	test      ports.SignificanceTestPort
	rng       ports.RNGPort
	workers   int
	progress  ProgressFunc
}

// NewSimulationService creates a simulation service with one worker per CPU
func NewSimulationService(generator ports.SampleGeneratorPort, test ports.SignificanceTestPort, rngPort ports.RNGPort) *SimulationService {
	return &SimulationService{
		generator: generator,
		test:      test,
		rng:       rngPort,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// SetWorkers bounds the trial worker pool (1 = sequential)
func (s *SimulationService) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// SetProgress installs an optional progress callback
func (s *SimulationService) SetProgress(fn ProgressFunc) {
	s.progress = fn
}

// RunRequest defines the inputs of one simulation run
type RunRequest struct {
	Spec         sim.PopulationSpec `json:"spec"`
	Participants int                `json:"participants"`
	Alpha        float64            `json:"alpha"`
	Trials       int                `json:"trials"`
	Seed         int64              `json:"seed"`
}

// Validate checks all run parameters before any trial executes
func (r RunRequest) Validate() error {
	if err := r.Spec.Validate(); err != nil {
		return err
	}
	if r.Participants < 1 {
		return core.NewInvalidParameterError("participants", "must be >= 1")
	}
	if !(r.Alpha > 0 && r.Alpha < 1) {
		return core.NewInvalidParameterError("alpha", "must be in (0,1)")
	}
	if r.Trials < 1 {
		return core.NewInvalidParameterError("trials", "must be >= 1")
	}
	return nil
}

// Run executes Trials independent (generate, test) repetitions and reduces
// the significance flags to an empirical rate.
//
// Each trial draws from its own stream keyed by (Seed, trial index) and
// writes only its own outcome slot, so the result is bit-identical for any
// worker count or scheduling order. The run fails fast on the first trial
// error; skipping failed trials would bias the rate downward.
func (s *SimulationService) Run(ctx context.Context, req RunRequest) (*sim.SimulationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	outcomes := make([]bool, req.Trials)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := 0; i < req.Trials; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := s.rng.TrialStream(gctx, req.Seed, i)
			if err != nil {
				return err
			}
			sample, err := s.generator.Draw(gctx, req.Spec, req.Participants, src)
			if err != nil {
				return err
			}
			outcome, err := s.test.Test(gctx, sample, req.Alpha)
			if err != nil {
				return err
			}
			outcomes[i] = outcome.Significant
			if s.progress != nil {
				s.progress(int(done.Add(1)), req.Trials)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	significant := 0
	for _, hit := range outcomes {
		if hit {
			significant++
		}
	}

	result := &sim.SimulationResult{
		RunID:         core.RunID(core.NewID()),
		Spec:          req.Spec,
		Participants:  req.Participants,
		Alpha:         req.Alpha,
		Trials:        req.Trials,
		Seed:          req.Seed,
		Significant:   significant,
		EmpiricalRate: float64(significant) / float64(req.Trials),
		RuntimeMs:     time.Since(start).Milliseconds(),
		CreatedAt:     time.Now().UTC(),
	}

	log.Printf("[SimulationService] Run %s: %d/%d significant (rate %.4f, %s, %dms)",
		result.RunID, significant, req.Trials, result.EmpiricalRate, s.test.Name(), result.RuntimeMs)

	return result, nil
}
