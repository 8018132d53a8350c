package main

import (
	"testing"
	"time"
)

// 150 uniform 16.67ms frames: the window caps at 100 samples and the mean
// settles near 60 fps once the degenerate first sample ages out.
func TestFrameStatsWindow(t *testing.T) {
	f := newFrameStats()
	base := time.Unix(1000, 0)
	for i := 0; i < 150; i++ {
		f.Sample(base.Add(time.Duration(i) * 16670 * time.Microsecond))
	}

	if f.Len() != FPSWindow {
		t.Fatalf("window holds %d samples, want %d", f.Len(), FPSWindow)
	}
	if f.Mean < 59 || f.Mean > 61 {
		t.Errorf("mean fps = %v, want ≈60", f.Mean)
	}
	if f.Min < 59 || f.Max > 61 {
		t.Errorf("min/max fps = %v/%v, want both ≈60", f.Min, f.Max)
	}
}

// The first sample has no prior timestamp; it produces an outlier rather
// than an error and gets evicted like any other sample.
func TestFrameStatsFirstSampleOutlier(t *testing.T) {
	f := newFrameStats()
	f.Sample(time.Unix(2000, 0))
	if f.Len() != 1 {
		t.Fatalf("window holds %d samples after first tick, want 1", f.Len())
	}
	f.Sample(time.Unix(2000, 0).Add(10 * time.Millisecond))
	if f.Len() != 2 {
		t.Fatalf("window holds %d samples after second tick, want 2", f.Len())
	}
	// Second sample is a clean 100 fps reading.
	if f.Max < 99 || f.Max > 101 {
		t.Errorf("max fps = %v, want ≈100", f.Max)
	}
}

// Old samples fall out in insertion order.
func TestFrameStatsEviction(t *testing.T) {
	f := newFrameStats()
	now := time.Unix(3000, 0)
	// Fill the window with 50 fps samples, then switch to 100 fps.
	for i := 0; i <= FPSWindow; i++ {
		now = now.Add(20 * time.Millisecond)
		f.Sample(now)
	}
	for i := 0; i < FPSWindow; i++ {
		now = now.Add(10 * time.Millisecond)
		f.Sample(now)
	}
	if f.Len() != FPSWindow {
		t.Fatalf("window holds %d samples, want %d", f.Len(), FPSWindow)
	}
	if f.Min < 99 {
		t.Errorf("min fps = %v; slow samples should have been evicted", f.Min)
	}
}
