// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"fmt"
	"math"
)

// Config holds the search fractions, all relative to the buffer length.
type Config struct {
	// SearchStart is how far into the note the loop start search begins.
	SearchStart float64
	// MinLoopLength is the shortest loop accepted.
	MinLoopLength float64
	// WindowSize is the length of the compared windows as a fraction of
	// the minimum loop length.
	WindowSize float64
	// Workers bounds the scoring goroutines; 0 means runtime.NumCPU().
	Workers int
}

// DefaultConfig returns the fractions that work for sustained instrument
// notes a few seconds long.
func DefaultConfig() Config {
	return Config{
		SearchStart:   0.1,
		MinLoopLength: 0.1,
		WindowSize:    0.75,
	}
}

// Validate reports the first field outside its range.
func (c Config) Validate() error {
	fractions := []struct {
		name string
		v    float64
	}{
		{"search start", c.SearchStart},
		{"min loop length", c.MinLoopLength},
		{"window size", c.WindowSize},
	}

	for _, f := range fractions {
		if math.IsNaN(f.v) || f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s %v not in [0, 1]", ErrInvalidConfig, f.name, f.v)
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	}

	return nil
}
