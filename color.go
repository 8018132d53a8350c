package main

import (
	"image/color"
	"math"
)

// phaseColor maps an oscillator phase (radians) to a fully saturated,
// fully bright color. The phase becomes the hue; negative phases wrap.
func phaseColor(rad float64) color.RGBA {
	deg := rad * 180 / math.Pi
	h := math.Mod(math.Mod(deg, 360)+360, 360)
	r, g, b := hsvToRGB(h, 1, 1)
	return color.RGBA{
		uint8(math.Round(r * 255)),
		uint8(math.Round(g * 255)),
		uint8(math.Round(b * 255)),
		255,
	}
}

// hsvToRGB helper. h in [0,360), s and v in [0,1].
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
