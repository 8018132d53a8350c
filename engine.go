package main

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Swarmalator integrates the coupled position/phase dynamics of n agents.
// All mutable state lives in one linear float64 slab, addressed by byte
// offset, mirroring a linear-memory engine: the slab may be reallocated
// when it grows, so callers must re-read Memory() after every engine call.
//
// Slab layout (element indices):
//
//	[0, 2n)    positions, interleaved x,y
//	[2n, 4n)   velocities
//	[4n, 5n)   phases
//	[5n, 6n)   delta phases
//	[6n, 7n)   per-agent J values
//	[7n, 8n)   distances to target (present only once a target is in play)
type Swarmalator struct {
	agents int
	a, b   float64 // velocity contribution coefficients
	k, j   float64 // phase coupling / spatial-phase interaction
	chiral []float64
	target []float64

	naturalFrequencies []float64
	mem                []float64
}

// newSwarmalator constructs the engine from a validated config.
// All agents start stationary.
func newSwarmalator(cfg SimulationConfig) (*Swarmalator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Agents
	e := &Swarmalator{
		agents:             n,
		a:                  1,
		b:                  1,
		k:                  cfg.K,
		j:                  cfg.J,
		naturalFrequencies: append([]float64(nil), cfg.NaturalFrequencies...),
		mem:                make([]float64, 7*n),
	}
	copy(e.mem[:2*n], cfg.Positions)
	copy(e.mem[4*n:5*n], cfg.Phases)
	if cfg.Chiral != nil {
		e.chiral = append([]float64(nil), cfg.Chiral...)
	}
	if cfg.Target != nil {
		e.target = append([]float64(nil), cfg.Target...)
	}
	return e, nil
}

// Memory returns the engine's current memory slab. The slab is replaced
// wholesale when it grows; never hold on to a previous return value.
func (e *Swarmalator) Memory() []float64 {
	return e.mem
}

// PositionsOffset returns the byte offset of the positions block (2n floats).
func (e *Swarmalator) PositionsOffset() int {
	return 0
}

// VelocitiesOffset returns the byte offset of the velocities block (2n floats).
func (e *Swarmalator) VelocitiesOffset() int {
	return 2 * e.agents * 8
}

// PhasesOffset returns the byte offset of the phases block (n floats).
func (e *Swarmalator) PhasesOffset() int {
	return 4 * e.agents * 8
}

// Step advances the simulation by dt time units. Targeted runs need the
// distance scratch block, so the first targeted step grows the slab.
func (e *Swarmalator) Step(dt float64) {
	n := e.agents
	if e.target != nil && len(e.mem) < 8*n {
		grown := make([]float64, 8*n)
		copy(grown, e.mem)
		e.mem = grown
	}

	positions := e.mem[:2*n]
	velocities := e.mem[2*n : 4*n]
	phases := e.mem[4*n : 5*n]
	deltaPhases := e.mem[5*n : 6*n]
	js := e.mem[6*n : 7*n]

	for i := range js {
		js[i] = e.j
	}

	// With a target, J falls off with normalized distance to it: agents
	// nearest the target sync hardest.
	if e.target != nil {
		dists := e.mem[7*n : 8*n]
		for i := 0; i < n; i++ {
			dists[i] = math.Hypot(positions[i*2]-e.target[0], positions[i*2+1]-e.target[1])
		}
		maxDist, minDist := math.Inf(-1), math.Inf(1)
		for _, d := range dists {
			maxDist = math.Max(maxDist, d)
			minDist = math.Min(minDist, d)
		}
		for i := 0; i < n; i++ {
			js[i] = e.a * math.Abs(dists[i]-minDist) / (maxDist - minDist)
		}
	}

	// Pairwise pass. Each worker owns a disjoint range of agents and only
	// writes velocities[i] and deltaPhases[i] for its own i, so the chunks
	// run without coordination.
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				e.accumulate(i, positions, velocities, phases, deltaPhases, js)
			}
		}(lo, hi)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		phases[i] += deltaPhases[i] * dt
		phases[i] = math.Mod(phases[i], 2*math.Pi)

		positions[i*2] += velocities[i*2] * dt
		positions[i*2+1] += velocities[i*2+1] * dt
	}
}

// accumulate computes agent i's velocity and phase derivative from every
// other agent.
func (e *Swarmalator) accumulate(i int, positions, velocities, phases, deltaPhases, js []float64) {
	n := e.agents

	// Chiral agents self-propel perpendicular to their phase angle.
	if e.chiral != nil {
		velocities[i*2] = e.chiral[i] * math.Cos(phases[i]+math.Pi/2)
		velocities[i*2+1] = e.chiral[i] * math.Sin(phases[i]+math.Pi/2)
	} else {
		velocities[i*2] = 0
		velocities[i*2+1] = 0
	}

	deltaPhases[i] = e.naturalFrequencies[i]

	for j := 0; j < n; j++ {
		if i == j {
			continue
		}

		dx := positions[j*2] - positions[i*2]
		dy := positions[j*2+1] - positions[i*2+1]
		dist := math.Hypot(dx, dy)

		// Counter-rotating chiral pairs couple with a phase offset
		// derived from their frequency sign difference.
		var freqDiffXY, freqDiffPhase float64
		if e.chiral != nil {
			wi, wj := e.naturalFrequencies[i], e.naturalFrequencies[j]
			freqDiffXY = (math.Pi / 2) * math.Abs(wj/math.Abs(wj)-wi/math.Abs(wi))
			freqDiffPhase = freqDiffXY / 2
		}

		attract := e.a + js[i]*math.Cos(phases[j]-phases[i]-freqDiffXY)
		velocities[i*2] += (1 / float64(n)) * ((dx/dist)*attract - e.b*dx/(dist*dist))
		velocities[i*2+1] += (1 / float64(n)) * ((dy/dist)*attract - e.b*dy/(dist*dist))

		deltaPhases[i] += (e.k / float64(n)) * math.Sin(phases[j]-phases[i]-freqDiffPhase) / dist
	}
}

// SetTarget replaces the target position.
func (e *Swarmalator) SetTarget(target []float64) error {
	if len(target) != 2 {
		return fmt.Errorf("target array must have 2 elements, got %d", len(target))
	}
	e.target = append([]float64(nil), target...)
	return nil
}

// SetK replaces the phase coupling coefficient.
func (e *Swarmalator) SetK(k float64) {
	e.k = k
}

// SetJ replaces the spatial-phase interaction coefficient.
func (e *Swarmalator) SetJ(j float64) {
	e.j = j
}

// SetChiral replaces the chirality coefficients; nil disables chirality.
func (e *Swarmalator) SetChiral(chiral []float64) error {
	if chiral != nil && len(chiral) != e.agents {
		return fmt.Errorf("chiral array must have agents elements, got %d for %d agents", len(chiral), e.agents)
	}
	if chiral == nil {
		e.chiral = nil
		return nil
	}
	e.chiral = append([]float64(nil), chiral...)
	return nil
}

// SetPhases overwrites all agent phases.
func (e *Swarmalator) SetPhases(phases []float64) error {
	if len(phases) != e.agents {
		return fmt.Errorf("phases array must have agents elements, got %d for %d agents", len(phases), e.agents)
	}
	copy(e.mem[4*e.agents:5*e.agents], phases)
	return nil
}

// SetNaturalFrequencies replaces all natural frequencies.
func (e *Swarmalator) SetNaturalFrequencies(freqs []float64) error {
	if len(freqs) != e.agents {
		return fmt.Errorf("natural frequencies array must have agents elements, got %d for %d agents", len(freqs), e.agents)
	}
	e.naturalFrequencies = append([]float64(nil), freqs...)
	return nil
}
