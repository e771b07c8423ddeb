// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/loopfont/selection"
)

// SelectionSource returns the selections of a preset, or (nil, nil) when
// the preset has none.
type SelectionSource interface {
	Selections(preset string) (*selection.Store, error)
}

// PatchConfig maps sample names to presets and recordings.
type PatchConfig struct {
	// Sentinel names records that are never patched.
	Sentinel string
	// SuffixLen is the number of trailing name bytes (the note) removed to
	// get the preset name.
	SuffixLen int
	// FileExt is appended to the sample name to get the recording file name.
	FileExt string
	// CheckBounds rejects patched loops that fall outside their sample.
	CheckBounds bool
}

// DefaultPatchConfig matches samples named like "flute-C4" (preset "flute")
// recorded to "flute-C4.wav".
func DefaultPatchConfig() PatchConfig {
	return PatchConfig{
		Sentinel:  EOS,
		SuffixLen: 3,
		FileExt:   ".wav",
	}
}

// PatchReport lists sample names by outcome.
type PatchReport struct {
	// Patched samples got their loop from a selection.
	Patched []string
	// Disabled samples belong to a preset with no selection file; their
	// loop was set to [0, 0].
	Disabled []string
	// Skipped records carry the sentinel name.
	Skipped []string
}

// PresetName strips the note suffix from a sample name.
func (c PatchConfig) PresetName(sample string) string {
	return sample[:max(0, len(sample)-c.SuffixLen)]
}

// Patch sets StartLoop and EndLoop of every record in hs from src. For a
// sample at absolute offset Start, a selection [s, e] becomes the loop
// [Start+s, Start+e]. A preset with no selections disables the loop; a
// preset whose selections lack the sample is a *LookupError. On any error hs
// is left untouched.
func Patch(hs []SampleHeader, src SelectionSource, cfg PatchConfig) (PatchReport, error) {
	var report PatchReport

	out := slices.Clone(hs)
	stores := make(map[string]*selection.Store)

	for i := range out {
		h := &out[i]
		name := h.NameString()
		if name == cfg.Sentinel {
			report.Skipped = append(report.Skipped, name)
			continue
		}

		preset := cfg.PresetName(name)
		store, ok := stores[preset]
		if !ok {
			var err error
			store, err = src.Selections(preset)
			if err != nil {
				return PatchReport{}, fmt.Errorf("loading selections of preset %q: %w", preset, err)
			}
			stores[preset] = store
		}

		if store == nil {
			h.StartLoop, h.EndLoop = 0, 0
			report.Disabled = append(report.Disabled, name)
			continue
		}

		file := name + cfg.FileExt
		sel, ok := store.Lookup(file)
		if !ok {
			return PatchReport{}, &LookupError{Preset: preset, File: file}
		}

		startLoop := uint64(h.Start) + uint64(sel.Start)
		endLoop := uint64(h.Start) + uint64(sel.End)
		outside := cfg.CheckBounds &&
			(startLoop > endLoop || endLoop > uint64(h.End))
		if outside || endLoop > math.MaxUint32 {
			return PatchReport{}, &BoundsError{
				Sample:    name,
				Start:     uint64(h.Start),
				End:       uint64(h.End),
				StartLoop: startLoop,
				EndLoop:   endLoop,
			}
		}

		h.StartLoop, h.EndLoop = uint32(startLoop), uint32(endLoop)
		report.Patched = append(report.Patched, name)
	}

	copy(hs, out)

	return report, nil
}
