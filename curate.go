// SPDX-License-Identifier: EPL-2.0

package loopfont

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/loopfont/audio"
	"github.com/ik5/loopfont/loop"
	"github.com/ik5/loopfont/selection"
)

// DefaultRejectionFile collects loops a reviewer turned down.
const DefaultRejectionFile = "rejected_loops.txt"

// Reviewer decides whether a loop candidate found in note is good enough.
type Reviewer interface {
	Review(ctx context.Context, note string, buf *audio.Buffer, c loop.Candidate) (bool, error)
}

// ScoreReviewer accepts candidates whose score is at most Max, for
// unattended runs.
type ScoreReviewer struct {
	Max float64
}

func (r ScoreReviewer) Review(_ context.Context, _ string, _ *audio.Buffer, c loop.Candidate) (bool, error) {
	return c.Score <= r.Max, nil
}

// CurateConfig controls a curation run. The zero value searches with
// loop.DefaultConfig and writes the default file names.
type CurateConfig struct {
	Search *loop.Config
	Loader Loader
	// SelectionFile and RejectionFile are file names inside the directory.
	SelectionFile string
	RejectionFile string
	// Redo reviews notes that already have a selection.
	Redo bool
	// Progress, when set, is called after each note.
	Progress func(note string)
}

func (c CurateConfig) searchConfig() loop.Config {
	if c.Search != nil {
		return *c.Search
	}
	return loop.DefaultConfig()
}

func (c CurateConfig) selectionFile() string {
	if c.SelectionFile != "" {
		return c.SelectionFile
	}
	return selection.DefaultFileName
}

func (c CurateConfig) rejectionFile() string {
	if c.RejectionFile != "" {
		return c.RejectionFile
	}
	return DefaultRejectionFile
}

// CurateResult lists note paths by outcome.
type CurateResult struct {
	Accepted []string
	Rejected []string
	// NotFound notes were too short for a loop under the search config.
	NotFound []string
	// Skipped notes already had a selection.
	Skipped []string
}

// Notes returns the recordings in dir the loader can decode, sorted by name.
func (c CurateConfig) Notes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var notes []string
	for _, e := range entries {
		if e.Type().IsRegular() && c.Loader.Supported(e.Name()) {
			notes = append(notes, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(notes)

	return notes, nil
}

// Curate searches a loop in every recording of dir and asks rev about it.
// Accepted loops are appended to the selection file of dir with the verdict
// "good", rejected ones to the rejection file with "bad". Notes already in
// the selection file are skipped unless Redo is set, so an interrupted run
// can be resumed. The run stops at the first decode, review or write error
// and when ctx is done; verdicts recorded so far are kept.
func Curate(ctx context.Context, dir string, rev Reviewer, cfg CurateConfig) (CurateResult, error) {
	var res CurateResult

	notes, err := cfg.Notes(dir)
	if err != nil {
		return res, err
	}

	selPath := filepath.Join(dir, cfg.selectionFile())
	rejPath := filepath.Join(dir, cfg.rejectionFile())

	done, err := selection.Load(selPath)
	if errors.Is(err, fs.ErrNotExist) {
		done, err = &selection.Store{}, nil
	}
	if err != nil {
		return res, err
	}

	search := cfg.searchConfig()
	logger.Tf(ctx, "curate %v notes in %v, search=%+v", len(notes), dir, search)

	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%w", err)
		}

		if _, ok := done.Lookup(filepath.Base(note)); ok && !cfg.Redo {
			res.Skipped = append(res.Skipped, note)
			cfg.progress(note)
			continue
		}

		accepted, c, err := curateNote(ctx, note, rev, search, cfg.Loader)
		switch {
		case errors.Is(err, loop.ErrNotFound):
			logger.Wf(ctx, "no loop in %v", note)
			res.NotFound = append(res.NotFound, note)
			cfg.progress(note)
			continue
		case err != nil:
			return res, err
		}

		rec := selection.Record{Path: note, Start: uint32(c.Start), End: uint32(c.End), Score: c.Score}
		if accepted {
			rec.Verdict = selection.VerdictGood
			err = selection.AppendFile(selPath, rec)
			res.Accepted = append(res.Accepted, note)
		} else {
			rec.Verdict = selection.VerdictBad
			err = selection.AppendFile(rejPath, rec)
			res.Rejected = append(res.Rejected, note)
		}
		if err != nil {
			return res, err
		}

		logger.Tf(ctx, "%v loop [%v, %v) score=%.6f %v", note, c.Start, c.End, c.Score, rec.Verdict)
		cfg.progress(note)
	}

	return res, nil
}

func (c CurateConfig) progress(note string) {
	if c.Progress != nil {
		c.Progress(note)
	}
}

func curateNote(ctx context.Context, note string, rev Reviewer, search loop.Config, l Loader) (bool, loop.Candidate, error) {
	buf, err := l.Load(note)
	if err != nil {
		return false, loop.Candidate{}, err
	}

	c, err := loop.Search(buf.Samples, search)
	if err != nil {
		return false, c, err
	}

	ok, err := rev.Review(ctx, note, buf, c)
	if err != nil {
		return false, c, fmt.Errorf("reviewing %s: %w", note, err)
	}

	return ok, c, nil
}
