// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ik5/loopfont/internal/audiotest"
)

// stalledSource never makes progress.
type stalledSource struct{}

func (stalledSource) SampleRate() int                    { return 8000 }
func (stalledSource) Channels() int                      { return 1 }
func (stalledSource) BufSize() int                       { return 16 }
func (stalledSource) Close() error                       { return nil }
func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }

type brokenSource struct{ stalledSource }

func (brokenSource) ReadSamples([]float32) (int, error) { return 0, errors.New("device gone") }

func TestCollect_Mono(t *testing.T) {
	t.Parallel()

	want := audiotest.Sine(10000, 100, 0.5, 0)
	buf, err := Collect(audiotest.NewBufferSource(22050, want))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if buf.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", buf.SampleRate)
	}
	if buf.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", buf.Len(), len(want))
	}

	for i := range want {
		// float32 round trip
		if math.Abs(buf.Samples[i]-want[i]) > 1e-6 {
			t.Fatalf("Samples[%d] = %v, want %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestCollect_StereoIsMixed(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 9000, func(sample int, channel int) float32 {
		if channel == 0 {
			return 1
		}
		return 0
	})

	buf, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if buf.Len() != 9000 {
		t.Fatalf("Len() = %d, want 9000", buf.Len())
	}
	for i, v := range buf.Samples {
		if v != 0.5 {
			t.Fatalf("Samples[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestCollect_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := Collect(audiotest.NewConstantSource(0, 1, 10, 0)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Collect() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestCollect_NoProgress(t *testing.T) {
	t.Parallel()

	if _, err := Collect(stalledSource{}); !errors.Is(err, ErrNoProgress) {
		t.Errorf("Collect() error = %v, want ErrNoProgress", err)
	}
}

func TestCollect_SourceError(t *testing.T) {
	t.Parallel()

	_, err := Collect(brokenSource{})
	if err == nil || errors.Is(err, ErrNoProgress) {
		t.Errorf("Collect() error = %v, want read error", err)
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: make([]float64, 44100), SampleRate: 44100}
	if got := buf.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}
	if got := buf.DurationOf(22050); got != 500*time.Millisecond {
		t.Errorf("DurationOf(22050) = %v, want 500ms", got)
	}

	empty := &Buffer{}
	if got := empty.Duration(); got != 0 {
		t.Errorf("Duration() with zero rate = %v, want 0", got)
	}
}

func TestBuffer_Peak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"positive", []float64{0.1, 0.7, -0.2}, 0.7},
		{"negative", []float64{0.1, -0.9, 0.2}, 0.9},
		{"silence", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &Buffer{Samples: tt.samples, SampleRate: 8000}
			if got := buf.Peak(); got != tt.want {
				t.Errorf("Peak() = %v, want %v", got, tt.want)
			}
		})
	}
}
