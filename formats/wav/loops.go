// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// Loop is a sustain loop stored in a WAV smpl chunk. Start and End are
// sample frame offsets.
type Loop struct {
	Type      uint32
	Start     uint32
	End       uint32
	PlayCount uint32
}

// ReadLoops returns the loops of the smpl chunk, or ErrNoSamplerChunk when the
// file has none. Recorders and editors that already marked a loop store it here.
func ReadLoops(r io.Reader) ([]Loop, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadMetadata()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading wav metadata: %w", err)
	}

	if dec.Metadata == nil || dec.Metadata.SamplerInfo == nil {
		return nil, ErrNoSamplerChunk
	}

	info := dec.Metadata.SamplerInfo
	loops := make([]Loop, 0, len(info.Loops))
	for _, l := range info.Loops {
		loops = append(loops, Loop{
			Type:      l.Type,
			Start:     l.Start,
			End:       l.End,
			PlayCount: l.PlayCount,
		})
	}

	return loops, nil
}
