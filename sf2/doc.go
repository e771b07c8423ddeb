// SPDX-License-Identifier: EPL-2.0

// Package sf2 reads and rewrites the sample header table of a SoundFont 2
// file and patches loop points into it.
//
// The table is the "shdr" sub-chunk of the "pdta" list: fixed 46-byte
// records, one per sample, terminated by a record named "EOS". Offsets in a
// record are absolute sample indices into the shared "smpl" pool.
//
// Patch fills in loop points from per-preset selection files. Sample names
// follow the recording convention "<preset>-<note>" (for example "flute-C4"
// in preset "flute"), and each sample was recorded to "<name>.wav":
//
//	tree, _ := riff.Decode(data)
//	hs, _ := sf2.ReadSampleHeaders(tree)
//	report, err := sf2.Patch(hs, selection.DirSource{Root: dir}, sf2.DefaultPatchConfig())
//	if err == nil {
//	    _ = sf2.WriteSampleHeaders(tree, hs)
//	}
//
// Patch is all or nothing: on error no record has been changed.
package sf2
