// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files.
//
// Decoding goes through github.com/go-audio/wav, so recordings carrying
// LIST, bext or smpl chunks around the audio data are read without
// trouble. Integer PCM at 8, 16, 24 and 32 bits is supported; samples are
// normalized to [-1.0, 1.0):
//
//	f, _ := os.Open("Piano-Default-V127-C4.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// ReadLoops returns any sustain loops a recorder or editor already stored in
// the smpl chunk, which is a useful starting point when curating loops.
//
// WriteWAV16 writes a mono 16-bit PCM file, used to export loop previews.
package wav
