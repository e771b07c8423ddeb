// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float64
		x              float64
		want           float64
		tolerance      float64
	}{
		{name: "at start", y0: 0, y1: 1, y2: 2, y3: 3, x: 0, want: 1, tolerance: 1e-9},
		{name: "at end", y0: 0, y1: 1, y2: 2, y3: 3, x: 1, want: 2, tolerance: 1e-9},
		{name: "linear midpoint", y0: 0, y1: 1, y2: 2, y3: 3, x: 0.5, want: 1.5, tolerance: 1e-9},
		{name: "constant", y0: 0.3, y1: 0.3, y2: 0.3, y3: 0.3, x: 0.7, want: 0.3, tolerance: 1e-9},
		{name: "negative slope", y0: 3, y1: 2, y2: 1, y3: 0, x: 0.25, want: 1.75, tolerance: 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_Overshoot(t *testing.T) {
	t.Parallel()

	// a spike between two zeros bulges past the linear interpolation
	got := CubicInterpolate(0, 0, 1, 0, 0.5)
	if got <= 0.5 {
		t.Errorf("CubicInterpolate() = %v, want > 0.5 for spike", got)
	}
}
