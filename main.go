package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	const agents = 200

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	positions := uniformPositions(agents, -3, 3, rng)

	cfg := SimulationConfig{
		Agents:             agents,
		Positions:          positions,
		Phases:             perlinPhases(positions, rng.Int63()),
		NaturalFrequencies: constantFrequencies(agents, 1),
		K:                  1,
		J:                  1,
		Target:             []float64{2, 0},
	}

	engine, err := newSwarmalator(cfg)
	if err != nil {
		log.Fatal("Failed to construct engine:", err)
	}

	transform := ScreenTransform{
		Logical: CanvasSize,
		Scale:   ebiten.Monitor().DeviceScaleFactor(),
	}
	harness := newHarness(newDriver(engine, agents), agents, -3, 3, transform)

	ebiten.SetWindowSize(int(CanvasSize), int(CanvasSize))
	ebiten.SetWindowTitle("Swarmalators")
	ebiten.SetTPS(60) // Target 60 ticks per second

	if err := ebiten.RunGame(harness); err != nil {
		log.Fatal(err)
	}
}
