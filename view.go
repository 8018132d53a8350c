package main

import "fmt"

// View is a read-only window of float64 elements inside the engine's
// shared memory. It is only valid until the next engine call: stepping or
// even calling another accessor may reallocate the region, leaving the
// view pointing at a dead copy. Resolve fresh every tick, never cache.
type View struct {
	data []float64
}

// resolveView wraps count elements starting at byte offset off into mem.
// Offsets come straight from the engine and address 8-byte floats, so an
// unaligned or out-of-range offset means the caller mixed up buffers.
func resolveView(mem []float64, off, count int) (View, error) {
	if off%8 != 0 {
		return View{}, fmt.Errorf("view offset %d not 8-byte aligned", off)
	}
	i := off / 8
	if i < 0 || count < 0 || i+count > len(mem) {
		return View{}, fmt.Errorf("view [%d, %d) outside memory of %d elements", i, i+count, len(mem))
	}
	return View{data: mem[i : i+count]}, nil
}

// Len returns the element count of the view.
func (v View) Len() int {
	return len(v.data)
}

// At returns the i-th element.
func (v View) At(i int) float64 {
	return v.data[i]
}
