// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Sine returns n samples of a sine wave repeating every period samples,
// starting at phase offset (in samples).
func Sine(n, period int, amplitude float64, offset int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(i+offset)/float64(period))
	}

	return out
}

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Decaying returns a sine with an exponential amplitude envelope, which is how a
// struck or plucked note looks once recorded.
func Decaying(n, period int, tau float64) []float64 {
	out := Sine(n, period, 1, 0)
	for i := range out {
		out[i] *= math.Exp(-float64(i) / tau)
	}

	return out
}
