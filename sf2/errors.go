// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedRecord indicates trailing bytes too short for a whole header record
	ErrTruncatedRecord = errors.New("truncated sample header record")

	// ErrNoSampleHeaders indicates the container has no pdta list holding a shdr chunk
	ErrNoSampleHeaders = errors.New("no sample header chunk")

	// ErrNotSoundFont indicates a RIFF container whose format is not sfbk
	ErrNotSoundFont = errors.New("not a SoundFont container")
)

// LookupError reports a sample with no entry in an existing selection file.
// It is distinct from a preset having no selection file at all, which only
// disables the loop.
type LookupError struct {
	Preset string
	File   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no loop selected for %q in preset %q", e.File, e.Preset)
}

// BoundsError reports a record whose loop is not inside the sample:
// Start <= StartLoop <= EndLoop <= End must hold.
type BoundsError struct {
	Sample    string
	Start     uint64
	End       uint64
	StartLoop uint64
	EndLoop   uint64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sample %q: loop [%d, %d] outside sample [%d, %d]",
		e.Sample, e.StartLoop, e.EndLoop, e.Start, e.End)
}
