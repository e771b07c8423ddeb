// SPDX-License-Identifier: EPL-2.0

package loopfont

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/loopfont/audio"
	"github.com/ik5/loopfont/formats/aiff"
	"github.com/ik5/loopfont/formats/mp3"
	"github.com/ik5/loopfont/formats/vorbis"
	"github.com/ik5/loopfont/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder, keyed by file
// extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

var defaultRegistry = NewRegistry()

// Loader decodes recordings into mono buffers.
type Loader struct {
	// Registry selects the decoder by extension; nil uses NewRegistry().
	Registry *audio.Registry
	// SampleRate, when positive, resamples the note. Loop offsets found on a
	// resampled note are only valid for samples stored at that rate, so set
	// it to the rate of the SoundFont samples when they differ from the
	// recordings.
	SampleRate int
}

// Load decodes path with the default Loader.
func Load(path string) (*audio.Buffer, error) {
	return Loader{}.Load(path)
}

// Supported reports whether the extension of path has a decoder.
func (l Loader) Supported(path string) bool {
	_, ok := l.registry().Get(filepath.Ext(path))
	return ok
}

func (l Loader) registry() *audio.Registry {
	if l.Registry != nil {
		return l.Registry
	}
	return defaultRegistry
}

// Load decodes the whole recording at path, mixes it to mono and resamples
// it when a SampleRate is set.
func (l Loader) Load(path string) (*audio.Buffer, error) {
	ext := filepath.Ext(path)
	dec, ok := l.registry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if l.SampleRate > 0 && buf.SampleRate != l.SampleRate {
		if buf, err = audio.Resample(buf, l.SampleRate); err != nil {
			return nil, fmt.Errorf("resampling %s: %w", path, err)
		}
	}

	return buf, nil
}
