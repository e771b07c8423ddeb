// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ik5/loopfont"
	"github.com/ik5/loopfont/audio"
	"github.com/ik5/loopfont/formats/wav"
	"github.com/ik5/loopfont/internal/config"
	"github.com/ik5/loopfont/loop"
	"github.com/ik5/loopfont/utils"
)

type searchResult struct {
	path   string
	buf    *audio.Buffer
	c      loop.Candidate
	stored []wav.Loop
	err    error
}

func runSearch(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("search", "[flags] <note>...")
	workers := fs.Int("workers", cfg.Search.Workers, "Scoring goroutines, 0 for one per CPU")
	rate := fs.Int("rate", cfg.SampleRate, "Resample notes to this rate before searching, 0 to keep; loop offsets are then at this rate")
	preview := fs.String("preview", "", "Write a looped preview WAV of each note into this directory")
	repeats := fs.Int("repeats", cfg.PreviewRepeats, "Loop body repetitions in a preview")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no notes")
	}

	search := cfg.Search
	search.Workers = *workers
	loader := loopfont.Loader{SampleRate: *rate}
	paths := fs.Args()

	var p *mpb.Progress
	var bar *mpb.Bar
	if len(paths) > 1 {
		p = mpb.NewWithContext(ctx, mpb.WithWidth(64))
		bar = p.AddBar(int64(len(paths)),
			mpb.PrependDecorators(
				decor.Name("Searching: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(
				decor.Percentage(),
				decor.EwmaETA(decor.ET_STYLE_GO, 30),
			),
		)
	}

	results := make([]searchResult, 0, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		r := searchNote(path, loader, search)
		if r.err == nil && *preview != "" {
			r.err = writePreview(filepath.Join(*preview, previewName(path)), r.buf, r.c, *repeats)
		}
		results = append(results, r)
		if bar != nil {
			bar.Increment()
		}
	}
	if p != nil {
		if ctx.Err() != nil {
			bar.Abort(false)
		}
		p.Wait()
	}

	var failed int
	for _, r := range results {
		printResult(r)
		if r.err != nil && errors.Cause(r.err) != loop.ErrNotFound {
			failed++
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%v of %v notes failed", failed, len(paths))
	}
	logger.Tf(ctx, "searched %v notes, search=%+v", len(paths), search)

	return nil
}

func searchNote(path string, l loopfont.Loader, cfg loop.Config) searchResult {
	r := searchResult{path: path}

	if r.buf, r.err = l.Load(path); r.err != nil {
		return r
	}

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		if f, err := os.Open(path); err == nil {
			r.stored, _ = wav.ReadLoops(f)
			f.Close()
		}
	}

	r.c, r.err = loop.Search(r.buf.Samples, cfg)

	return r
}

func printResult(r searchResult) {
	switch {
	case r.err != nil && errors.Cause(r.err) == loop.ErrNotFound:
		fmt.Printf("%s: no loop found\n", r.path)
		return
	case r.err != nil:
		fmt.Printf("%s: error: %v\n", r.path, r.err)
		return
	}

	fmt.Printf("%s,%d,%d,%g  (%v loop, window %d, peak %.2f)\n",
		r.path, r.c.Start, r.c.End, r.c.Score, r.buf.DurationOf(r.c.Length()), r.c.Window, r.buf.Peak())
	for _, s := range r.stored {
		fmt.Printf("  stored loop [%d, %d]\n", s.Start, s.End)
	}
}

func previewName(note string) string {
	base := filepath.Base(note)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "-loop.wav"
}

// writePreview renders the note with its loop body repeated and stores it
// as a 16-bit WAV.
func writePreview(path string, buf *audio.Buffer, c loop.Candidate, repeats int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	samples := utils.FloatsToInt16(loop.Render(buf.Samples, c, repeats))
	if err := wav.WriteWAV16(f, buf.SampleRate, samples); err != nil {
		f.Close()
		return errors.Wrapf(err, "write preview %v", path)
	}

	return f.Close()
}
