// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"fmt"

	"github.com/ik5/loopfont/riff"
)

var (
	sfbkID = riff.ID("sfbk")
	pdtaID = riff.ID("pdta")
	shdrID = riff.ID("shdr")
)

// SampleHeaderChunk returns the pdta list that holds the shdr sub-chunk.
// The list is searched for by type rather than position.
func SampleHeaderChunk(t *riff.Tree) (*riff.List, error) {
	if t.Format != sfbkID {
		return nil, fmt.Errorf("%w: format %q", ErrNotSoundFont, t.Format[:])
	}

	for _, c := range t.Chunks {
		l, ok := c.(*riff.List)
		if !ok || l.Type != pdtaID {
			continue
		}
		if _, ok := l.Sub.Get(shdrID); ok {
			return l, nil
		}
	}

	return nil, ErrNoSampleHeaders
}

// ReadSampleHeaders parses the sample header table of t. A truncated table
// returns its whole records along with the ErrTruncatedRecord error.
func ReadSampleHeaders(t *riff.Tree) ([]SampleHeader, error) {
	l, err := SampleHeaderChunk(t)
	if err != nil {
		return nil, err
	}

	data, _ := l.Sub.Get(shdrID)
	return ParseSampleHeaders(data)
}

// WriteSampleHeaders replaces the sample header table of t with hs.
func WriteSampleHeaders(t *riff.Tree, hs []SampleHeader) error {
	l, err := SampleHeaderChunk(t)
	if err != nil {
		return err
	}

	l.Sub.Set(shdrID, MarshalSampleHeaders(hs))

	return nil
}
