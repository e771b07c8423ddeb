// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"fmt"
	"io"

	goriff "github.com/go-audio/riff"
)

// Probe reads only the container header from r and returns the format tag,
// "sfbk" for a SoundFont or "WAVE" for a recording.
func Probe(r io.Reader) ([4]byte, error) {
	p := goriff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return [4]byte{}, fmt.Errorf("%w: %v", ErrNotRIFF, err)
	}

	return p.Format, nil
}
