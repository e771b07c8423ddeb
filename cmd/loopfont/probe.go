// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/loopfont/formats/wav"
	"github.com/ik5/loopfont/internal/config"
	"github.com/ik5/loopfont/riff"
	"github.com/ik5/loopfont/sf2"
)

func runProbe(_ context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("probe", "<file>...")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no files")
	}

	for _, path := range fs.Args() {
		if err := probe(path, cfg); err != nil {
			return errors.Wrapf(err, "probe %v", path)
		}
	}

	return nil
}

func probe(path string, cfg *config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	format, err := riff.Probe(f)
	if err != nil {
		return err
	}
	fmt.Printf("%s: RIFF %s\n", path, format[:])

	switch format {
	case riff.ID("sfbk"):
		return probeSoundfont(path, cfg)
	case riff.ID("WAVE"):
		if _, err := f.Seek(0, 0); err != nil {
			return err
		}
		loops, err := wav.ReadLoops(f)
		if errors.Cause(err) == wav.ErrNoSamplerChunk {
			fmt.Println("  no stored loops")
			return nil
		}
		if err != nil {
			return err
		}
		for _, l := range loops {
			fmt.Printf("  loop [%d, %d] type %d\n", l.Start, l.End, l.Type)
		}
	}

	return nil
}

func probeSoundfont(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tree, err := riff.DecodeWithOptions(data, riff.Options{Pad: cfg.PadChunks})
	if err != nil {
		return err
	}

	hs, err := sf2.ReadSampleHeaders(tree)
	if err != nil && hs == nil {
		return err
	}
	if err != nil {
		fmt.Printf("  warning: %v\n", err)
	}

	fmt.Printf("  %d sample headers\n", len(hs))
	for _, h := range hs {
		fmt.Printf("  %-20s [%d, %d) loop [%d, %d] %d Hz %s\n",
			h.NameString(), h.Start, h.End, h.StartLoop, h.EndLoop, h.SampleRate, h.SampleType)
	}

	return nil
}
