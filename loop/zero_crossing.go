// SPDX-License-Identifier: EPL-2.0

package loop

// Direction selects which way ZeroCrossing scans from its start index.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ZeroCrossing returns the first index i, scanning from start in direction
// dir, where buf[i] and buf[i-1] have strictly opposite signs. Index 0 is
// never reported since it has no predecessor, and a sample that is exactly
// zero does not count as a crossing on either side.
//
// When no crossing exists the start index is returned. A start outside the
// buffer is clamped into [0, len(buf)-1] first, so for a non-empty buffer
// the result is always a valid index.
func ZeroCrossing(buf []float64, start int, dir Direction) int {
	if len(buf) == 0 {
		return start
	}
	start = max(0, min(start, len(buf)-1))

	switch dir {
	case Backward:
		for i := start; i >= 1; i-- {
			if buf[i]*buf[i-1] < 0 {
				return i
			}
		}
	default:
		for i := max(start, 1); i < len(buf); i++ {
			if buf[i]*buf[i-1] < 0 {
				return i
			}
		}
	}

	return start
}
