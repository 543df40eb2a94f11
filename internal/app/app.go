// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/spf13/pflag"

	"seqcomplex/internal/alphabet"
	"seqcomplex/internal/cli"
	"seqcomplex/internal/pipeline"
	"seqcomplex/internal/version"
	"seqcomplex/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqcomplex")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "seqcomplex version %s\n", version.Version)
		return 0
	}

	logger := newLogger(stderr, opts)

	// Validation is the rank transform's job; the parser only splits
	// records.
	seq.ValidateSeq = false

	alpha, aerr := alphabet.ByName(opts.Alphabet)
	if aerr != nil {
		fmt.Fprintln(stderr, aerr)
		return 2
	}
	rt := alphabet.NewRankTransform(alpha)

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	out, closeOut, oerr := writers.OpenOutput(opts.Output, outw)
	if oerr != nil {
		fmt.Fprintln(stderr, oerr)
		return 2
	}

	inCh, writeErr := writers.Start(out, writers.Options{
		Mask:      opts.Mask,
		Sort:      opts.Sort,
		Header:    opts.Header,
		LineWidth: opts.LineWidth,
	}, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	started := time.Now()
	var records, maskedBases int

	perr := pipeline.ForEachRecord(ctx, pipeline.Config{
		Threads:   thr,
		K:         opts.K,
		Window:    opts.Window,
		Threshold: opts.Threshold,
		Mask:      opts.Mask,
		LowerCase: opts.LowerCase,
		MaskByte:  opts.MaskByte(),
		Format:    opts.Format,
	}, opts.Inputs, rt, func(r pipeline.Result) error {
		records++
		maskedBases += r.MaskedBases
		select {
		case inCh <- r:
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
	if e := closeOut(); e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}

	if opts.Mask {
		logger.Infof("masked %d bases across %d records in %s", maskedBases, records, time.Since(started).Round(time.Millisecond))
	} else {
		logger.Infof("measured %d records in %s", records, time.Since(started).Round(time.Millisecond))
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newLogger(stderr io.Writer, opts cli.Options) *charmlog.Logger {
	logger := charmlog.NewWithOptions(stderr, charmlog.Options{ReportTimestamp: false})
	switch {
	case opts.Quiet:
		logger.SetLevel(charmlog.WarnLevel)
	case opts.Verbose:
		logger.SetLevel(charmlog.DebugLevel)
	default:
		logger.SetLevel(charmlog.InfoLevel)
	}
	return logger
}
