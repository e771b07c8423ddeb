// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/loopfont"
	"github.com/ik5/loopfont/internal/config"
	"github.com/ik5/loopfont/riff"
	"github.com/ik5/loopfont/selection"
)

func runPatch(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("patch", "[flags] <in.sf2> <out.sf2>")
	recordings := fs.String("recordings", cfg.RecordingsDir, "Root holding one selection directory per preset")
	pad := fs.Bool("pad", cfg.PadChunks, "Word-align RIFF chunks")
	check := fs.Bool("check-bounds", cfg.Patch.CheckBounds, "Reject loops outside their sample")
	truncated := fs.Bool("allow-truncated", false, "Drop a partial trailing sample header instead of failing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errors.New("need input and output files")
	}

	pc := cfg.Patch
	pc.CheckBounds = *check
	src := selection.DirSource{Root: *recordings, FileName: cfg.SelectionFile}

	report, err := loopfont.PatchSoundfont(ctx, fs.Arg(0), fs.Arg(1), src, loopfont.PatchOptions{
		Patch:          &pc,
		RIFF:           riff.Options{Pad: *pad},
		AllowTruncated: *truncated,
	})
	if err != nil {
		return err
	}

	for _, name := range report.Disabled {
		logger.Wf(ctx, "no selections for %v, loop disabled", name)
	}

	return nil
}
