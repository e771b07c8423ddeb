// SPDX-License-Identifier: EPL-2.0

// Package config reads loopfont settings from an optional .env file and
// LOOPFONT_* environment variables. Variables set in the environment win
// over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ik5/loopfont"
	"github.com/ik5/loopfont/loop"
	"github.com/ik5/loopfont/selection"
	"github.com/ik5/loopfont/sf2"
)

// Prefix starts every variable name.
const Prefix = "LOOPFONT_"

// Config is the full set of tunables of the CLI.
type Config struct {
	Search loop.Config
	// SampleRate resamples notes before the search when positive.
	SampleRate int

	RecordingsDir string
	SelectionFile string
	RejectionFile string

	Patch sf2.PatchConfig
	// PadChunks reads and writes RIFF chunks with word alignment padding.
	PadChunks bool

	// MaxScore is the threshold of unattended curation.
	MaxScore float64
	// PreviewRepeats is how many times the loop body is played in a preview.
	PreviewRepeats int
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Search:         loop.DefaultConfig(),
		RecordingsDir:  ".",
		SelectionFile:  selection.DefaultFileName,
		RejectionFile:  loopfont.DefaultRejectionFile,
		Patch:          sf2.DefaultPatchConfig(),
		MaxScore:       0.05,
		PreviewRepeats: 4,
	}
}

// Load reads envFile, when it exists, and the process environment on top of
// Default. An empty envFile reads the environment only.
func Load(envFile string) (*Config, error) {
	file := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
		if m != nil {
			file = m
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(Prefix + key); ok {
			return v, true
		}
		v, ok := file[Prefix+key]
		return v, ok
	}

	c := Default()
	p := parser{lookup: lookup}

	p.float("SEARCH_START", &c.Search.SearchStart)
	p.float("MIN_LOOP_LENGTH", &c.Search.MinLoopLength)
	p.float("WINDOW_SIZE", &c.Search.WindowSize)
	p.int("WORKERS", &c.Search.Workers)
	p.int("SAMPLE_RATE", &c.SampleRate)
	p.string("RECORDINGS_DIR", &c.RecordingsDir)
	p.string("SELECTION_FILE", &c.SelectionFile)
	p.string("REJECTION_FILE", &c.RejectionFile)
	p.string("SENTINEL", &c.Patch.Sentinel)
	p.int("SUFFIX_LEN", &c.Patch.SuffixLen)
	p.string("FILE_EXT", &c.Patch.FileExt)
	p.bool("PAD_CHUNKS", &c.PadChunks)
	p.bool("CHECK_BOUNDS", &c.Patch.CheckBounds)
	p.float("MAX_SCORE", &c.MaxScore)
	p.int("PREVIEW_REPEATS", &c.PreviewRepeats)

	if p.err != nil {
		return nil, p.err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the values Load cannot check one at a time.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if c.SampleRate < 0 {
		return fmt.Errorf("%w: %sSAMPLE_RATE %d is negative", ErrInvalidValue, Prefix, c.SampleRate)
	}
	if c.Patch.SuffixLen < 0 {
		return fmt.Errorf("%w: %sSUFFIX_LEN %d is negative", ErrInvalidValue, Prefix, c.Patch.SuffixLen)
	}
	if c.PreviewRepeats < 1 {
		return fmt.Errorf("%w: %sPREVIEW_REPEATS must be at least 1", ErrInvalidValue, Prefix)
	}
	if c.SelectionFile == "" || c.RejectionFile == "" {
		return fmt.Errorf("%w: selection and rejection file names must be set", ErrInvalidValue)
	}

	return nil
}

// ErrInvalidValue is returned for a variable that does not parse or is out
// of range.
var ErrInvalidValue = errors.New("invalid configuration value")

// parser keeps the first error so Load can read every key in a row.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) set(key string, parse func(string) error) {
	v, ok := p.lookup(key)
	if !ok || p.err != nil {
		return
	}
	if err := parse(v); err != nil {
		p.err = fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, Prefix, key, v)
	}
}

func (p *parser) string(key string, dst *string) {
	p.set(key, func(v string) error {
		*dst = v
		return nil
	})
}

func (p *parser) int(key string, dst *int) {
	p.set(key, func(v string) (err error) {
		*dst, err = strconv.Atoi(v)
		return err
	})
}

func (p *parser) float(key string, dst *float64) {
	p.set(key, func(v string) (err error) {
		*dst, err = strconv.ParseFloat(v, 64)
		return err
	})
}

func (p *parser) bool(key string, dst *bool) {
	p.set(key, func(v string) (err error) {
		*dst, err = strconv.ParseBool(v)
		return err
	})
}
