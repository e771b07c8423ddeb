// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt16 converts a normalized sample to 16-bit PCM, clamping to [-1, 1].
func FloatToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// FloatsToInt16 converts a whole buffer with FloatToInt16.
func FloatsToInt16(src []float64) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = FloatToInt16(x)
	}

	return out
}
