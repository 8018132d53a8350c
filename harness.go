package main

import (
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Harness constants
const (
	CanvasSize   = 800.0 // logical canvas edge, units
	MarkerRadius = 5.0   // logical px
	ViewMargin   = 0.1   // fraction of the canvas kept clear on each side
	DT           = 0.05  // simulation-time units per tick
)

// Render loop states
const (
	loopIdle int32 = iota
	loopRunning
	loopStopped
)

// ScreenTransform maps logical canvas coordinates onto the physical
// backing store. Fixed at startup; there is no resize handling.
type ScreenTransform struct {
	Logical float64
	Scale   float64 // device pixel ratio
}

// Pixel converts a logical coordinate to a backing-store coordinate.
func (t ScreenTransform) Pixel(v float64) float32 {
	return float32(v * t.Scale)
}

// surface is the drawing capability the render loop needs. Tests swap in
// a recording implementation to observe draw calls.
type surface interface {
	Clear()
	FillCircle(x, y, r float32, c color.Color)
}

type ebitenSurface struct {
	img *ebiten.Image
}

func (s ebitenSurface) Clear() {
	s.img.Fill(color.Black)
}

func (s ebitenSurface) FillCircle(x, y, r float32, c color.Color) {
	vector.DrawFilledCircle(s.img, x, y, r, c, true)
}

// Harness drives the render loop: one tick is one simulation step plus one
// redraw. It implements ebiten.Game and runs until the window closes or
// Stop is called.
type Harness struct {
	driver    *Driver
	agents    int
	stats     *frameStats
	transform ScreenTransform

	// world extent rendered onto the canvas, per axis
	worldMin, worldMax float64

	state atomic.Int32
	err   error
}

func newHarness(driver *Driver, agents int, worldMin, worldMax float64, transform ScreenTransform) *Harness {
	return &Harness{
		driver:    driver,
		agents:    agents,
		stats:     newFrameStats(),
		transform: transform,
		worldMin:  worldMin,
		worldMax:  worldMax,
	}
}

// Stop requests loop termination; the next Update returns
// ebiten.Termination instead of scheduling another tick. Safe to call
// from any goroutine.
func (h *Harness) Stop() {
	h.state.Store(loopStopped)
}

// Update runs the simulation half of the tick: sample the frame clock,
// then advance the engine.
func (h *Harness) Update() error {
	if h.state.Load() == loopStopped {
		return ebiten.Termination
	}
	h.state.CompareAndSwap(loopIdle, loopRunning)

	if h.err != nil {
		return h.err
	}

	h.stats.Sample(time.Now())
	h.driver.Step(DT)
	return nil
}

// Draw runs the render half of the tick. A draw failure is fatal to the
// loop; it is surfaced through the next Update since Draw cannot fail in
// ebiten's contract.
func (h *Harness) Draw(screen *ebiten.Image) {
	if err := h.renderFrame(ebitenSurface{screen}); err != nil {
		h.err = err
		return
	}
	msg := fmt.Sprintf("fps min %5.1f  mean %5.1f  max %5.1f", h.stats.Min, h.stats.Mean, h.stats.Max)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// renderFrame resolves fresh buffer views and draws every agent as a
// filled circle colored by phase. Views are resolved here, after the
// tick's Step, and dropped before the function returns.
func (h *Harness) renderFrame(dst surface) error {
	positions, err := h.driver.Positions()
	if err != nil {
		return fmt.Errorf("resolving positions: %w", err)
	}
	phases, err := h.driver.Phases()
	if err != nil {
		return fmt.Errorf("resolving phases: %w", err)
	}

	dst.Clear()

	lo := ViewMargin * CanvasSize
	hi := (1 - ViewMargin) * CanvasSize
	for i := 0; i < h.agents; i++ {
		sx := mapRange(positions.At(i*2), h.worldMin, h.worldMax, lo, hi)
		sy := mapRange(positions.At(i*2+1), h.worldMin, h.worldMax, lo, hi)
		dst.FillCircle(h.transform.Pixel(sx), h.transform.Pixel(sy), h.transform.Pixel(MarkerRadius), phaseColor(phases.At(i)))
	}
	return nil
}

// Layout reports the backing-store size: the logical canvas scaled by the
// device pixel ratio, fixed regardless of the outer window size.
func (h *Harness) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := int(h.transform.Logical * h.transform.Scale)
	return size, size
}
