package main

// Engine is the capability surface the harness needs from a simulation
// engine: advance time and locate the agent arrays inside linear memory.
// Offsets address 64-bit floats and are only meaningful against the slab
// returned by the very next Memory() call.
type Engine interface {
	Step(dt float64)
	PositionsOffset() int
	VelocitiesOffset() int
	PhasesOffset() int
	Memory() []float64
}

// Driver owns the engine handle and re-derives typed views on demand.
// Every accessor resolves against a fresh Memory() read, so a view is safe
// exactly until the next call into the engine.
type Driver struct {
	engine Engine
	agents int
}

func newDriver(engine Engine, agents int) *Driver {
	return &Driver{engine: engine, agents: agents}
}

// Step advances the simulation; any previously resolved view is dead after
// this returns.
func (d *Driver) Step(dt float64) {
	d.engine.Step(dt)
}

// Positions resolves a fresh view of the 2n interleaved position floats.
func (d *Driver) Positions() (View, error) {
	return resolveView(d.engine.Memory(), d.engine.PositionsOffset(), 2*d.agents)
}

// Velocities resolves a fresh view of the 2n interleaved velocity floats.
// Not rendered today; kept for parity with the engine surface.
func (d *Driver) Velocities() (View, error) {
	return resolveView(d.engine.Memory(), d.engine.VelocitiesOffset(), 2*d.agents)
}

// Phases resolves a fresh view of the n phase floats.
func (d *Driver) Phases() (View, error) {
	return resolveView(d.engine.Memory(), d.engine.PhasesOffset(), d.agents)
}
