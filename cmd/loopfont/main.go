// SPDX-License-Identifier: EPL-2.0

// Command loopfont finds seamless loops in sampled notes, lets a person or a
// score threshold curate them and patches the chosen loop points into a
// SoundFont.
//
//	loopfont [-env .env] probe <file>...
//	loopfont [-env .env] search [-preview dir] <note>...
//	loopfont [-env .env] curate [-auto] [-redo] [dir]
//	loopfont [-env .env] patch [-recordings dir] <in.sf2> <out.sf2>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/loopfont/internal/config"
)

const version = "0.1.0"

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, cfg *config.Config, args []string) error
}

var commands = []command{
	{"probe", "show the container type, sample headers or stored loops of files", runProbe},
	{"search", "find the best loop of each note", runSearch},
	{"curate", "search and review every note of a preset directory", runCurate},
	{"patch", "write selected loops into the sample headers of a SoundFont", runPatch},
}

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

func doMain(ctx context.Context) error {
	var envFile string
	var showVersion bool
	flag.StringVar(&envFile, "env", ".env", "Settings file with LOOPFONT_* variables")
	flag.BoolVar(&showVersion, "v", false, "Print version and quit")
	flag.BoolVar(&showVersion, "version", false, "Print version and quit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return nil
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return errors.New("no command")
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return errors.Wrapf(err, "load %v", envFile)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for _, c := range commands {
		if c.name == args[0] {
			if err := c.run(ctx, cfg, args[1:]); err != nil {
				return errors.Wrapf(err, "%v", c.name)
			}
			return nil
		}
	}

	usage()
	return errors.Errorf("unknown command %q", args[0])
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [flags] <command> [args]\n\ncommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(out, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(out, "\nflags:")
	flag.PrintDefaults()
}

// newFlagSet returns a flag set for a command that reports errors instead
// of exiting.
func newFlagSet(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s %s %s\n", os.Args[0], name, args)
		fs.PrintDefaults()
	}
	return fs
}
