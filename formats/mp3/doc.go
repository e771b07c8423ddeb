// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so the Source
// reports two channels regardless of the file layout. Samples are
// normalized to [-1.0, 1.0):
//
//	f, _ := os.Open("Strings-Default-V127-A3.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//	buf, err := audio.Collect(src) // mono float64 buffer
//
// MP3 encoders pad the start of the stream with silence, so loop offsets
// found on a decoded MP3 are only valid for that decoded stream.
package mp3
