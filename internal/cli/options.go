// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"genblast2gff/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output files
	InputFile  string // genblastA report, "-" for stdin
	OutputFile string // empty or "-" means stdout

	// Quality thresholds (inclusive lower bounds)
	MinPercIdentity float64
	MinPercCoverage float64
	MinMatchLength  int

	// Output
	Output          string // gff | json | jsonl
	Header          bool   // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags, splits out the positional
// input/output paths, and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	// Thresholds
	fs.Float64Var(&opt.MinPercIdentity, "min-perc-identity", 80.0, "minimum average % identity to accept [80.0]")
	fs.Float64Var(&opt.MinPercIdentity, "I", 80.0, "alias of --min-perc-identity")
	fs.Float64Var(&opt.MinPercCoverage, "min-perc-coverage", 80.0, "minimum coverage of the query sequence [80.0]")
	fs.Float64Var(&opt.MinPercCoverage, "C", 80.0, "alias of --min-perc-coverage")
	fs.IntVar(&opt.MinMatchLength, "min-match-length", 100, "shortest match length to accept [100]")
	fs.IntVar(&opt.MinMatchLength, "L", 100, "alias of --min-match-length")

	// Output
	fs.StringVar(&opt.Output, "output", "gff", "output format: gff | json | jsonl [gff]")
	fs.StringVar(&opt.Output, "o", "gff", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress the ##gff-version 3 header line [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no feature passes the filters [0]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	SetUsage(fs, fs.Name())

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	switch len(posArgs) {
	case 0:
		return opt, errors.New("a genblastA report file (or '-' for stdin) is required")
	case 1:
		opt.InputFile = posArgs[0]
	case 2:
		opt.InputFile = posArgs[0]
		opt.OutputFile = posArgs[1]
	default:
		return opt, fmt.Errorf("expected at most 2 positional arguments (input, output), got %d", len(posArgs))
	}

	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.MinPercIdentity < 0 {
		return errors.New("--min-perc-identity must be ≥ 0")
	}
	if o.MinPercCoverage < 0 {
		return errors.New("--min-perc-coverage must be ≥ 0")
	}
	if o.MinMatchLength < 0 {
		return errors.New("--min-match-length must be ≥ 0")
	}
	switch o.Output {
	case "gff", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
