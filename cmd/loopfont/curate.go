// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ik5/loopfont"
	"github.com/ik5/loopfont/audio"
	"github.com/ik5/loopfont/internal/config"
	"github.com/ik5/loopfont/loop"
)

var errQuit = errors.New("quit")

// promptReviewer writes a looped preview of each note and asks on in
// whether to keep it.
type promptReviewer struct {
	in      *bufio.Reader
	out     io.Writer
	dir     string
	repeats int
}

func (r *promptReviewer) Review(ctx context.Context, note string, buf *audio.Buffer, c loop.Candidate) (bool, error) {
	preview := filepath.Join(r.dir, previewName(note))
	if err := writePreview(preview, buf, c, r.repeats); err != nil {
		return false, err
	}

	fmt.Fprintf(r.out, "\n%s (%v)\n  loop [%d, %d) %v, score %.6f\n  preview %s\n",
		filepath.Base(note), buf.Duration(), c.Start, c.End, buf.DurationOf(c.Length()), c.Score, preview)

	for {
		fmt.Fprint(r.out, "  keep? [y/n/q] ")
		line, err := r.in.ReadString('\n')
		if err != nil && line == "" {
			return false, errors.Wrapf(err, "read answer")
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "q", "quit":
			return false, errQuit
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
	}
}

func runCurate(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("curate", "[flags] [dir]")
	auto := fs.Bool("auto", false, "Accept loops by score instead of asking")
	maxScore := fs.Float64("max", cfg.MaxScore, "Highest score accepted with -auto")
	redo := fs.Bool("redo", false, "Review notes that already have a selection")
	rate := fs.Int("rate", cfg.SampleRate, "Resample notes to this rate before searching, 0 to keep; loop offsets are then at this rate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dir := cfg.RecordingsDir
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	search := cfg.Search
	cc := loopfont.CurateConfig{
		Search:        &search,
		Loader:        loopfont.Loader{SampleRate: *rate},
		SelectionFile: cfg.SelectionFile,
		RejectionFile: cfg.RejectionFile,
		Redo:          *redo,
	}

	var rev loopfont.Reviewer
	var p *mpb.Progress
	if *auto {
		rev = loopfont.ScoreReviewer{Max: *maxScore}

		notes, err := cc.Notes(dir)
		if err != nil {
			return errors.Wrapf(err, "list %v", dir)
		}
		p = mpb.NewWithContext(ctx, mpb.WithWidth(64))
		bar := p.AddBar(int64(len(notes)),
			mpb.PrependDecorators(
				decor.Name("Curating: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
		cc.Progress = func(string) { bar.Increment() }
		defer func() {
			bar.Abort(false)
			p.Wait()
		}()
	} else {
		tmp, err := os.MkdirTemp("", "loopfont-preview")
		if err != nil {
			return errors.Wrapf(err, "preview dir")
		}
		defer os.RemoveAll(tmp)

		rev = &promptReviewer{
			in:      bufio.NewReader(os.Stdin),
			out:     os.Stdout,
			dir:     tmp,
			repeats: cfg.PreviewRepeats,
		}
	}

	res, err := loopfont.Curate(ctx, dir, rev, cc)
	logger.Tf(ctx, "curate %v: %v accepted, %v rejected, %v without loop, %v skipped",
		dir, len(res.Accepted), len(res.Rejected), len(res.NotFound), len(res.Skipped))
	// Curate wraps reviewer errors with fmt.
	if stderrors.Is(err, errQuit) {
		return nil
	}

	return err
}
