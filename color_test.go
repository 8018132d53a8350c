package main

import (
	"image/color"
	"math"
	"testing"
)

// Phase 0 sits at the start of the red sector.
func TestPhaseColorZeroIsRed(t *testing.T) {
	got := phaseColor(0)
	want := color.RGBA{255, 0, 0, 255}
	if got != want {
		t.Fatalf("phaseColor(0) = %v, want %v", got, want)
	}
}

// Phase π is the opposite point of the hue circle.
func TestPhaseColorPiIsCyan(t *testing.T) {
	got := phaseColor(math.Pi)
	want := color.RGBA{0, 255, 255, 255}
	if got != want {
		t.Fatalf("phaseColor(π) = %v, want %v", got, want)
	}
}

// All channels must stay in range over the whole phase circle.
func TestPhaseColorChannelsSaturated(t *testing.T) {
	for i := 0; i < 1000; i++ {
		h := 2 * math.Pi * float64(i) / 1000
		c := phaseColor(h)
		// uint8 bounds the channels already; a fully saturated, fully
		// bright color must also have at least one channel at 255.
		if c.R != 255 && c.G != 255 && c.B != 255 {
			t.Fatalf("phaseColor(%v) = %v has no saturated channel", h, c)
		}
		if c.A != 255 {
			t.Fatalf("phaseColor(%v) alpha = %d", h, c.A)
		}
	}
}

// Encoding is 2π-periodic and handles negative phases.
func TestPhaseColorPeriodic(t *testing.T) {
	for _, h := range []float64{0, 0.3, 1, 2.5, 4, 6, -1, -2.5} {
		a := phaseColor(h)
		b := phaseColor(h + 2*math.Pi)
		if a != b {
			t.Errorf("phaseColor(%v) = %v but phaseColor(%v + 2π) = %v", h, a, h, b)
		}
	}
}

// Pure function: same input, same output.
func TestPhaseColorIdempotent(t *testing.T) {
	for _, h := range []float64{0.1, 1.7, 3.9, 5.5} {
		if phaseColor(h) != phaseColor(h) {
			t.Fatalf("phaseColor(%v) not deterministic", h)
		}
	}
}
