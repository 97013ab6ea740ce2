package stats

import (
	"context"
	"math"
	"testing"

	"fprsim/domain/core"
	"fprsim/domain/sim"
)

func buildSample(treatment, control []float64) sim.Sample {
	sample := make(sim.Sample, 0, len(treatment)+len(control))
	for _, score := range treatment {
		sample = append(sample, sim.Observation{Group: sim.GroupTreatment, Score: score})
	}
	for _, score := range control {
		sample = append(sample, sim.Observation{Group: sim.GroupControl, Score: score})
	}
	return sample
}

func TestWelchTTest_IdenticalGroups(t *testing.T) {
	test := NewWelchTTest()
	sample := buildSample([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5})

	outcome, err := test.Test(context.Background(), sample, 0.05)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(outcome.PValue-1.0) > 1e-9 {
		t.Errorf("Expected p-value 1.0 for identical groups, got %v", outcome.PValue)
	}
	if outcome.Significant {
		t.Error("Identical groups should not be significant")
	}
}

func TestWelchTTest_LargeSeparation(t *testing.T) {
	test := NewWelchTTest()
	sample := buildSample([]float64{10, 11, 12, 13, 14}, []float64{1, 2, 3, 4, 5})

	outcome, err := test.Test(context.Background(), sample, 0.05)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.PValue >= 0.001 {
		t.Errorf("Expected tiny p-value for well-separated groups, got %v", outcome.PValue)
	}
	if !outcome.Significant {
		t.Error("Well-separated groups should be significant at alpha 0.05")
	}
}

func TestWelchTTest_TwoTailedSymmetry(t *testing.T) {
	test := NewWelchTTest()
	a := []float64{1.2, 2.1, 3.3, 4.0, 5.4}
	b := []float64{2.5, 3.1, 4.6, 5.2, 6.0}

	forward, err := test.Test(context.Background(), buildSample(a, b), 0.05)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	reversed, err := test.Test(context.Background(), buildSample(b, a), 0.05)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(forward.PValue-reversed.PValue) > 1e-12 {
		t.Errorf("Two-tailed p-value should not depend on direction: %v vs %v", forward.PValue, reversed.PValue)
	}
}

// A p-value exactly equal to alpha must not count as significant.
func TestWelchTTest_StrictThreshold(t *testing.T) {
	test := NewWelchTTest()
	sample := buildSample([]float64{1.0, 2.0, 3.5, 4.1, 5.2}, []float64{2.2, 3.0, 4.4, 5.1, 6.3})

	outcome, err := test.Test(context.Background(), sample, 0.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.PValue <= 0 || outcome.PValue >= 1 {
		t.Fatalf("Expected interior p-value for this fixture, got %v", outcome.PValue)
	}

	boundary, err := test.Test(context.Background(), sample, outcome.PValue)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if boundary.Significant {
		t.Error("p-value equal to alpha must not be significant")
	}

	above, err := test.Test(context.Background(), sample, math.Nextafter(outcome.PValue, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !above.Significant {
		t.Error("p-value strictly below alpha must be significant")
	}
}

func TestWelchTTest_DegenerateSamples(t *testing.T) {
	test := NewWelchTTest()

	tests := []struct {
		name   string
		sample sim.Sample
	}{
		{"treatment too small", buildSample([]float64{1}, []float64{1, 2, 3})},
		{"control too small", buildSample([]float64{1, 2, 3}, []float64{4})},
		{"both empty", buildSample(nil, nil)},
		{"treatment zero variance", buildSample([]float64{2, 2, 2}, []float64{1, 2, 3})},
		{"control zero variance", buildSample([]float64{1, 2, 3}, []float64{5, 5, 5})},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := test.Test(context.Background(), testCase.sample, 0.05)
			if err == nil {
				t.Fatal("Expected DegenerateSample error")
			}
			if !core.IsDegenerateSample(err) {
				t.Errorf("Expected DegenerateSample, got %v", err)
			}
		})
	}
}

func TestWelchTTest_InvalidAlpha(t *testing.T) {
	test := NewWelchTTest()
	sample := buildSample([]float64{1, 2, 3}, []float64{4, 5, 6})

	for _, alpha := range []float64{0, 1, -0.05, 1.5} {
		_, err := test.Test(context.Background(), sample, alpha)
		if err == nil {
			t.Fatalf("Expected error for alpha=%v", alpha)
		}
		if !core.IsInvalidParameter(err) {
			t.Errorf("Expected InvalidParameter for alpha=%v, got %v", alpha, err)
		}
	}
}
