package main

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Endpoints of the input range land exactly on the output endpoints.
func TestMapRangeEndpoints(t *testing.T) {
	if got := mapRange(-3, -3, 3, 80, 720); !almostEqual(got, 80) {
		t.Errorf("map of inMin = %v, want 80", got)
	}
	if got := mapRange(3, -3, 3, 80, 720); !almostEqual(got, 720) {
		t.Errorf("map of inMax = %v, want 720", got)
	}
	if got := mapRange(0, -3, 3, 80, 720); !almostEqual(got, 400) {
		t.Errorf("map of midpoint = %v, want 400", got)
	}
}

// The mapping is monotonic for an increasing output range.
func TestMapRangeMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for v := -5.0; v <= 5.0; v += 0.25 {
		got := mapRange(v, -3, 3, 0, 800)
		if got <= prev {
			t.Fatalf("mapRange not monotonic at v=%v: %v <= %v", v, got, prev)
		}
		prev = got
	}
}

// Values outside the input range extrapolate linearly; no clamping.
func TestMapRangeExtrapolates(t *testing.T) {
	if got := mapRange(6, -3, 3, 80, 720); !almostEqual(got, 1040) {
		t.Errorf("map of out-of-range value = %v, want 1040", got)
	}
	if got := mapRange(-6, -3, 3, 80, 720); !almostEqual(got, -240) {
		t.Errorf("map of out-of-range value = %v, want -240", got)
	}
}
