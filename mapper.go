package main

// mapRange linearly remaps v from [inMin, inMax] to [outMin, outMax].
// Values outside the input range extrapolate; agents are allowed to leave
// the viewport and come back.
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}
