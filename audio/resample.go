// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/loopfont/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling.
const lowPassAlpha = 0.5

// Resample converts b to rate using cubic interpolation. When downsampling a
// one-pole low-pass filter runs first to reduce aliasing. A buffer already at
// rate is returned as is.
func Resample(b *Buffer, rate int) (*Buffer, error) {
	if rate <= 0 || b.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if rate == b.SampleRate || len(b.Samples) == 0 {
		return &Buffer{Samples: b.Samples, SampleRate: rate}, nil
	}

	ratio := float64(b.SampleRate) / float64(rate)
	src := b.Samples
	if ratio > 1 {
		src = lowPass(src, lowPassAlpha)
	}

	n := int(math.Floor(float64(len(src)) / ratio))
	out := make([]float64, n)
	last := len(src) - 1

	at := func(i int) float64 {
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for i := range n {
		pos := float64(i) * ratio
		k := int(pos)
		frac := pos - float64(k)
		out[i] = utils.CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), frac)
	}

	return &Buffer{Samples: out, SampleRate: rate}, nil
}

func lowPass(src []float64, alpha float64) []float64 {
	out := make([]float64, len(src))
	state := src[0]
	for i, x := range src {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
