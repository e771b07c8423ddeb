// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding plumbing that turns recorded notes into
// sample buffers for loop analysis.
//
// # Source Interface
//
// Every format decoder returns a Source, a stream of interleaved float32
// samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Buffers
//
// Loop search needs random access to the whole note, so sources are drained
// into a Buffer with Collect. Multi-channel sources are averaged to mono by a
// MonoMixer on the way:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
//
// A Buffer can be converted to another rate with Resample, which uses cubic
// interpolation and a one-pole low-pass filter when downsampling.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
//
// Keys are case-insensitive and a leading dot is ignored.
//
// # Error Handling
//
// Sources return io.EOF when exhausted. Collect treats io.EOF as completion and
// reports ErrNoProgress for a source that keeps returning neither samples nor
// an error.
package audio
