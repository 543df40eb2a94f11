// internal/filtercli/options.go
package filtercli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"seqcomplex/internal/version"
)

// Options holds the filter tool's flags and the optional input path.
type Options struct {
	Input     string // scores file, "-" = stdin
	Threshold float64
	Invert    bool

	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: keep sequence ids whose complexity z-score crosses a threshold

Version: %s

Usage:
  seqcomplex --no-header in.fq | cut -f1,4 | %s [options]
  %s [options] scores.tsv[.gz]

Reads 'id<TAB>score' lines (gzip ok, '-' = stdin) and prints the ids
whose z-score against the batch is strictly above --threshold
(strictly below with --invert).

Options:
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.Float64VarP(&opt.Threshold, "threshold", "t", -1.5, "minimum z-score to keep [-1.5]")
	fs.BoolVar(&opt.Invert, "invert", false, "keep scores below the threshold instead [false]")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress the summary log [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug-level logging [false]")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, pflag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch args := fs.Args(); len(args) {
	case 0:
		opt.Input = "-"
	case 1:
		opt.Input = args[0]
	default:
		return opt, errors.Errorf("at most one scores file, got %d arguments", len(args))
	}
	return opt, nil
}
