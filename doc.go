// SPDX-License-Identifier: EPL-2.0

// Package loopfont turns recorded instrument notes into looping SoundFont
// samples.
//
// The work happens in three steps, each usable on its own:
//
//  1. Load decodes a recording (WAV, AIFF, MP3 or Ogg Vorbis) into a mono
//     buffer, and loop.Search proposes a seamless loop for it.
//  2. Curate runs the search over every recording of a preset directory,
//     lets a Reviewer accept or reject each loop, and appends the verdicts
//     to the directory's selection files.
//  3. PatchSoundfont copies the accepted loops into the sample headers of a
//     SoundFont and writes the result.
//
// A typical run:
//
//	res, err := loopfont.Curate(ctx, "recordings/Casio MT-70/flute",
//	    loopfont.ScoreReviewer{Max: 0.05}, loopfont.CurateConfig{})
//
//	report, err := loopfont.PatchSoundfont(ctx, "MT-70.sf2", "MT-70-looped.sf2",
//	    selection.DirSource{Root: "recordings/Casio MT-70"}, loopfont.PatchOptions{})
//
// The format packages under formats/ and the audio package can also be used
// directly to decode and mix audio.
package loopfont
