// SPDX-License-Identifier: EPL-2.0

// Package selection reads and writes loop selection files.
//
// A selection file lives in each preset's recording directory and holds one
// accepted loop per line:
//
//	recordings/Casio MT-70/wood wind/wood wind-B3.wav,44114,80130,0.0366,good
//
// The fields are the recording path, the loop start and end as sample
// offsets into that recording, and optionally the match score and the
// reviewer's verdict. Entries are looked up by the last path element, so a
// file moved to another directory still matches. When a name appears more
// than once the last line wins, which lets a re-curated note simply be
// appended.
package selection
