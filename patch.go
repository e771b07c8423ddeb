// SPDX-License-Identifier: EPL-2.0

package loopfont

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/loopfont/riff"
	"github.com/ik5/loopfont/sf2"
)

// PatchOptions controls PatchSoundfont.
type PatchOptions struct {
	// Patch maps sample names to selections; the zero value means
	// sf2.DefaultPatchConfig().
	Patch *sf2.PatchConfig
	// RIFF is the chunk layout used to read and write the file.
	RIFF riff.Options
	// AllowTruncated patches a sample header table with trailing partial
	// bytes instead of failing. The partial bytes are dropped on write.
	AllowTruncated bool
}

// PatchSoundfont reads the SoundFont at in, patches loop points from src
// into its sample headers and writes the result to out. Nothing is written
// unless every step succeeds. in and out may be the same path.
func PatchSoundfont(ctx context.Context, in, out string, src sf2.SelectionSource, opts PatchOptions) (sf2.PatchReport, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return sf2.PatchReport{}, fmt.Errorf("%w", err)
	}

	tree, err := riff.DecodeWithOptions(data, opts.RIFF)
	if err != nil {
		return sf2.PatchReport{}, fmt.Errorf("decoding %s: %w", in, err)
	}

	hs, err := sf2.ReadSampleHeaders(tree)
	if errors.Is(err, sf2.ErrTruncatedRecord) && opts.AllowTruncated {
		logger.Wf(ctx, "%v: %v, keeping %v whole records", in, err, len(hs))
		err = nil
	}
	if err != nil {
		return sf2.PatchReport{}, fmt.Errorf("%s: %w", in, err)
	}

	cfg := sf2.DefaultPatchConfig()
	if opts.Patch != nil {
		cfg = *opts.Patch
	}

	report, err := sf2.Patch(hs, src, cfg)
	if err != nil {
		return sf2.PatchReport{}, err
	}

	if err := sf2.WriteSampleHeaders(tree, hs); err != nil {
		return sf2.PatchReport{}, err
	}

	encoded, err := riff.EncodeWithOptions(tree, opts.RIFF)
	if err != nil {
		return sf2.PatchReport{}, fmt.Errorf("encoding %s: %w", out, err)
	}

	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return sf2.PatchReport{}, fmt.Errorf("%w", err)
	}

	logger.Tf(ctx, "patched %v -> %v, %v looped, %v disabled, %v bytes",
		in, out, len(report.Patched), len(report.Disabled), len(encoded))

	return report, nil
}
