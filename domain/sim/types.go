package sim

import (
	"math"
	"time"

	"fprsim/domain/core"
)

// Group labels the two arms of a simulated experiment
type Group string

const (
	GroupTreatment Group = "treatment"
	GroupControl   Group = "control"
)

// PopulationSpec describes the normal populations both groups are drawn from.
// Constructed once per simulation run and never mutated.
type PopulationSpec struct {
	MeanTreatment float64 `json:"mean_treatment"`
	MeanControl   float64 `json:"mean_control"`
	SDTreatment   float64 `json:"sd_treatment"`
	SDControl     float64 `json:"sd_control"`
}

// Validate checks the population parameters
func (s PopulationSpec) Validate() error {
	if math.IsNaN(s.MeanTreatment) || math.IsNaN(s.MeanControl) {
		return core.NewInvalidParameterError("mean", "must be a number")
	}
	if !(s.SDTreatment > 0) {
		return core.NewInvalidParameterError("sd_treatment", "must be > 0")
	}
	if !(s.SDControl > 0) {
		return core.NewInvalidParameterError("sd_control", "must be > 0")
	}
	return nil
}

// Observation is one participant's score within a group
type Observation struct {
	Group Group   `json:"group"`
	Score float64 `json:"score"`
}

// Sample is one simulated two-group dataset. It lives for a single trial.
type Sample []Observation

// Scores returns the scores belonging to one group, in draw order
func (s Sample) Scores(g Group) []float64 {
	scores := make([]float64, 0, len(s)/2)
	for _, obs := range s {
		if obs.Group == g {
			scores = append(scores, obs.Score)
		}
	}
	return scores
}

// Size returns the total number of observations across both groups
func (s Sample) Size() int {
	return len(s)
}

// TrialOutcome is the reduced result of applying the significance test to one sample
type TrialOutcome struct {
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// SimulationResult aggregates all trial outcomes of one simulation run.
// Immutable once produced; this is the unit of reporting.
type SimulationResult struct {
	RunID         core.RunID     `json:"run_id"`
	Spec          PopulationSpec `json:"spec"`
	Participants  int            `json:"participants"`
	Alpha         float64        `json:"alpha"`
	Trials        int            `json:"trials"`
	Seed          int64          `json:"seed"`
	Significant   int            `json:"significant"`
	EmpiricalRate float64        `json:"empirical_rate"`
	RuntimeMs     int64          `json:"runtime_ms"`
	CreatedAt     time.Time      `json:"created_at"`
}

// StandardError returns the binomial standard error of the empirical rate
func (r SimulationResult) StandardError() float64 {
	if r.Trials < 1 {
		return 0
	}
	return math.Sqrt(r.EmpiricalRate * (1 - r.EmpiricalRate) / float64(r.Trials))
}
