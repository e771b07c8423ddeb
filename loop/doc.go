// SPDX-License-Identifier: EPL-2.0

// Package loop finds sustain loop points in a recorded note.
//
// A loop start is placed on a zero crossing a fixed fraction into the note,
// then every possible loop end past a minimum length is scored by comparing
// the window of audio following it with the window following the start. The
// end whose window differs least (mean absolute difference) wins:
//
//	c, err := loop.Search(buf.Samples, loop.DefaultConfig())
//	if errors.Is(err, loop.ErrNotFound) {
//	    // note too short for the configured fractions
//	}
//	fmt.Println(c.Start, c.End, c.Score)
//
// Scoring runs on a small worker pool. The result is identical to a
// sequential scan, including tie breaking: on equal scores the later end wins.
//
// Render builds the audio a player would produce for a candidate (intro,
// the loop repeated, then the release) so it can be auditioned.
package loop
