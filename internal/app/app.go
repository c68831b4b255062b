// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"genblast2gff/internal/cli"
	"genblast2gff/internal/genblast"
	"genblast2gff/internal/gff"
	"genblast2gff/internal/logging"
	"genblast2gff/internal/version"
	"genblast2gff/internal/writers"
)

// RunContext parses argv, sets up logging, and runs the scan → filter →
// write pipeline. Exit codes: 0 ok, 2 usage/input error, 3 write error,
// 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("genblast2gff")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "genblast2gff version %s\n", version.Version)
		return 0
	}

	logger := logging.Setup(stderr, opts.Quiet)

	in, err := genblast.Open(opts.InputFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	sink := stdout
	if opts.OutputFile != "" && opts.OutputFile != "-" {
		fh, err := os.Create(opts.OutputFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		defer func() { _ = fh.Close() }()
		sink = fh
	}
	outw := bufio.NewWriter(sink)

	thr := gff.Thresholds{
		MinPercIdentity: opts.MinPercIdentity,
		MinPercCoverage: opts.MinPercCoverage,
		MinMatchLength:  opts.MinMatchLength,
	}

	inCh, writeErr := writers.StartFeatureWriter(outw, opts.Output, opts.Header, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total := 0
	scanErr := genblast.ScanCtx(ctx, in, logger, func(rec genblast.Record) error {
		f, ok := gff.FromRecord(rec, thr, logger)
		if !ok {
			return nil
		}
		select {
		case inCh <- f:
			total++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if scanErr != nil {
		if errors.Is(scanErr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, scanErr)
		return 3
	}
	if total == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// Run is the background-context convenience wrapper around RunContext.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
