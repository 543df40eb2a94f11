// internal/filterapp/app.go
package filterapp

import (
	"bufio"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/pflag"

	"seqcomplex/internal/filter"
	"seqcomplex/internal/filtercli"
	"seqcomplex/internal/version"
	"seqcomplex/internal/writers"
)

// Run parses argv, reads id/score lines from stdin (or a path
// argument), and prints the kept ids to stdout.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := filtercli.NewFlagSet("seqcomplex-filter")
	fs.SetOutput(io.Discard)

	opts, err := filtercli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "seqcomplex-filter version %s\n", version.Version)
		return 0
	}

	logger := charmlog.NewWithOptions(stderr, charmlog.Options{ReportTimestamp: false})
	switch {
	case opts.Quiet:
		logger.SetLevel(charmlog.WarnLevel)
	case opts.Verbose:
		logger.SetLevel(charmlog.DebugLevel)
	default:
		logger.SetLevel(charmlog.InfoLevel)
	}

	in := stdin
	if opts.Input != "-" {
		fh, err := xopen.Ropen(opts.Input)
		if err != nil {
			fmt.Fprintln(stderr, errors.Wrapf(err, "open %s", opts.Input))
			return 2
		}
		defer fh.Close()
		in = fh
	}

	scores, err := filter.ParseScores(in)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	mean, sd, err := filter.Stats(scores)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if sd == 0 {
		logger.Warnf("all %d scores are identical; no id can cross the threshold", len(scores))
	}
	logger.Debugf("mean=%.6f sd=%.6f over %d scores", mean, sd, len(scores))

	kept := filter.Keep(scores, mean, sd, opts.Threshold, opts.Invert)
	for _, id := range kept {
		if _, err := fmt.Fprintln(outw, id); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	logger.Infof("kept %d of %d ids", len(kept), len(scores))
	return 0
}
