// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// maxEmptyReads bounds how many (0, nil) reads Collect tolerates in a row.
const maxEmptyReads = 64

// Buffer is a fully decoded mono note held in memory.
type Buffer struct {
	Samples    []float64
	SampleRate int
}

func (b *Buffer) Len() int { return len(b.Samples) }

// Duration returns the playing time of the whole buffer.
func (b *Buffer) Duration() time.Duration {
	return b.DurationOf(len(b.Samples))
}

// DurationOf converts a sample count into playing time at the buffer's rate.
func (b *Buffer) DurationOf(n int) time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(n) / float64(b.SampleRate) * float64(time.Second))
}

// Peak returns the largest absolute sample value, 0 for an empty buffer.
func (b *Buffer) Peak() float64 {
	if len(b.Samples) == 0 {
		return 0
	}

	return math.Max(floats.Max(b.Samples), -floats.Min(b.Samples))
}

// Collect drains src into a mono Buffer. Multi-channel sources are averaged
// through a MonoMixer. The source is not closed.
func Collect(src Source) (*Buffer, error) {
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	var mono Source = src
	if src.Channels() != 1 {
		mono = NewMonoMixer(src)
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	out := &Buffer{SampleRate: src.SampleRate()}
	buf := make([]float32, size)
	empty := 0

	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			out.Samples = append(out.Samples, float64(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	return out, nil
}
