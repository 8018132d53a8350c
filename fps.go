package main

import "time"

// FPSWindow is how many frame-rate samples the monitor keeps.
const FPSWindow = 100

// frameStats tracks realized frame rate over a sliding window.
// One instance lives for the whole run; Sample is called once per tick.
type frameStats struct {
	last    time.Time
	samples []float64
	Min     float64
	Max     float64
	Mean    float64
}

func newFrameStats() *frameStats {
	return &frameStats{samples: make([]float64, 0, FPSWindow)}
}

// Sample records one frame boundary at time now. The first sample has no
// previous timestamp and produces an outlier; it ages out of the window.
func (f *frameStats) Sample(now time.Time) {
	elapsed := float64(now.Sub(f.last).Nanoseconds()) / 1e6
	f.last = now

	fps := 1000 / elapsed
	f.samples = append(f.samples, fps)
	if len(f.samples) > FPSWindow {
		f.samples = f.samples[1:]
	}

	f.Min = f.samples[0]
	f.Max = f.samples[0]
	sum := 0.0
	for _, s := range f.samples {
		if s < f.Min {
			f.Min = s
		}
		if s > f.Max {
			f.Max = s
		}
		sum += s
	}
	f.Mean = sum / float64(len(f.samples))
}

// Len returns the number of samples currently in the window.
func (f *frameStats) Len() int {
	return len(f.samples)
}
