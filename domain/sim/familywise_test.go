package sim

import (
	"math"
	"testing"

	"fprsim/domain/core"
)

func TestFamilyWiseRate_SingleTestEqualsAlpha(t *testing.T) {
	rate, err := FamilyWiseRate(0.05, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(rate-0.05) > 1e-12 {
		t.Errorf("Expected rate 0.05 for a single test, got %v", rate)
	}
}

func TestFamilyWiseRate_KnownValues(t *testing.T) {
	tests := []struct {
		alpha    float64
		k        int
		expected float64
	}{
		{0.05, 2, 0.0975},
		{0.05, 3, 0.142625},
		{0.01, 1, 0.01},
		{0.5, 2, 0.75},
	}

	for _, test := range tests {
		rate, err := FamilyWiseRate(test.alpha, test.k)
		if err != nil {
			t.Fatalf("FamilyWiseRate(%v, %d): unexpected error: %v", test.alpha, test.k, err)
		}
		if math.Abs(rate-test.expected) > 1e-9 {
			t.Errorf("FamilyWiseRate(%v, %d) = %v, expected %v", test.alpha, test.k, rate, test.expected)
		}
	}
}

func TestFamilyWiseRate_MonotonicInK(t *testing.T) {
	prev := 0.0
	for k := 1; k <= 50; k++ {
		rate, err := FamilyWiseRate(0.05, k)
		if err != nil {
			t.Fatalf("Unexpected error at k=%d: %v", k, err)
		}
		if rate < prev {
			t.Errorf("Rate decreased at k=%d: %v < %v", k, rate, prev)
		}
		if rate < 0 || rate > 1 {
			t.Errorf("Rate out of [0,1] at k=%d: %v", k, rate)
		}
		prev = rate
	}
}

func TestFamilyWiseRate_MonotonicInAlpha(t *testing.T) {
	prev := 0.0
	for _, alpha := range []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 0.9} {
		rate, err := FamilyWiseRate(alpha, 5)
		if err != nil {
			t.Fatalf("Unexpected error at alpha=%v: %v", alpha, err)
		}
		if rate < prev {
			t.Errorf("Rate decreased at alpha=%v: %v < %v", alpha, rate, prev)
		}
		prev = rate
	}
}

func TestFamilyWiseRate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		k     int
	}{
		{"alpha zero", 0, 1},
		{"alpha one", 1, 1},
		{"alpha negative", -0.05, 1},
		{"alpha above one", 1.5, 1},
		{"k zero", 0.05, 0},
		{"k negative", 0.05, -3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FamilyWiseRate(test.alpha, test.k)
			if err == nil {
				t.Fatalf("Expected InvalidParameter error for alpha=%v k=%d", test.alpha, test.k)
			}
			if !core.IsInvalidParameter(err) {
				t.Errorf("Expected InvalidParameter, got %v", err)
			}
		})
	}
}

func TestNewFamilyWiseResult(t *testing.T) {
	result, err := NewFamilyWiseResult(0.05, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Alpha != 0.05 || result.K != 3 {
		t.Errorf("Inputs not carried through: %+v", result)
	}
	if math.Abs(result.Rate-0.142625) > 1e-9 {
		t.Errorf("Expected rate 0.142625, got %v", result.Rate)
	}
}
