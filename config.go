package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// SimulationConfig holds everything the engine needs at construction.
// Built once in main and handed to newSwarmalator; not used afterwards.
type SimulationConfig struct {
	Agents             int
	Positions          []float64 // 2 per agent, interleaved x,y
	Phases             []float64 // radians, 1 per agent
	NaturalFrequencies []float64 // 1 per agent
	K                  float64   // phase coupling coefficient
	J                  float64   // spatial-phase interaction coefficient
	Chiral             []float64 // optional ±1 per agent, nil for non-chiral
	Target             []float64 // optional x,y attractor, nil for none
}

// Validate checks the array lengths against the agent count. The engine
// refuses to construct on a bad config rather than indexing off the end.
func (c *SimulationConfig) Validate() error {
	if c.Agents <= 0 {
		return fmt.Errorf("agent count must be positive, got %d", c.Agents)
	}
	if len(c.Positions) != 2*c.Agents {
		return fmt.Errorf("positions array must have 2 * agents elements, got %d for %d agents", len(c.Positions), c.Agents)
	}
	if len(c.Phases) != c.Agents {
		return fmt.Errorf("phases array must have agents elements, got %d for %d agents", len(c.Phases), c.Agents)
	}
	if len(c.NaturalFrequencies) != c.Agents {
		return fmt.Errorf("natural frequencies array must have agents elements, got %d for %d agents", len(c.NaturalFrequencies), c.Agents)
	}
	if c.Chiral != nil && len(c.Chiral) != c.Agents {
		return fmt.Errorf("chiral array must have agents elements, got %d for %d agents", len(c.Chiral), c.Agents)
	}
	if c.Target != nil && len(c.Target) != 2 {
		return fmt.Errorf("target array must have 2 elements, got %d", len(c.Target))
	}
	return nil
}

// uniformPositions scatters n agents uniformly over [min,max]².
func uniformPositions(n int, min, max float64, rng *rand.Rand) []float64 {
	pos := make([]float64, 2*n)
	for i := range pos {
		pos[i] = min + rng.Float64()*(max-min)
	}
	return pos
}

// linspacePhases spreads n phases evenly over [0, 2π).
func linspacePhases(n int) []float64 {
	phases := make([]float64, n)
	for i := range phases {
		phases[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return phases
}

// constantFrequencies gives every agent the same natural frequency.
func constantFrequencies(n int, omega float64) []float64 {
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = omega
	}
	return freqs
}

// alternatingChirality assigns +1/-1 chirality by agent parity.
func alternatingChirality(n int) []float64 {
	chiral := make([]float64, n)
	for i := range chiral {
		if i%2 == 0 {
			chiral[i] = 1
		} else {
			chiral[i] = -1
		}
	}
	return chiral
}

// perlinPhases samples a Perlin noise field at each agent's initial
// position, so agents that start close together start near-synchronized.
// Positions are interleaved x,y as in SimulationConfig.
func perlinPhases(positions []float64, seed int64) []float64 {
	p := perlin.NewPerlin(2, 2, 3, seed)
	phases := make([]float64, len(positions)/2)
	for i := range phases {
		// Noise2D returns roughly [-1,1]; stretch onto the phase circle.
		n := p.Noise2D(positions[i*2], positions[i*2+1])
		phases[i] = math.Mod((n+1)*math.Pi, 2*math.Pi)
	}
	return phases
}
