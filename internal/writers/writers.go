// internal/writers/writers.go
package writers

import (
	"errors"
	"io"
	"sort"
	"syscall"

	"github.com/shenwei356/xopen"

	"seqcomplex/internal/output"
	"seqcomplex/internal/pipeline"
)

// Options selects what the writer goroutine emits.
type Options struct {
	Mask      bool // record output instead of measure rows
	Sort      bool // buffer and re-order by record index
	Header    bool // TSV header (measure only)
	LineWidth int  // FASTA wrapping (mask only)
}

// Start spins up the writer goroutine. Results are sent on the returned
// channel; closing it ends the writer, whose first error arrives on the
// error channel.
func Start(out io.Writer, o Options, bufSize int) (chan<- pipeline.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch {
		case o.Sort:
			var buf []pipeline.Result
			for r := range in {
				buf = append(buf, r)
			}
			sortByIndex(buf)
			if o.Mask {
				err = output.WriteRecords(out, buf, o.LineWidth)
			} else {
				err = output.WriteTSV(out, buf, o.Header)
			}
		case o.Mask:
			err = output.StreamRecords(out, in, o.LineWidth)
		default:
			err = output.StreamTSV(out, in, o.Header)
		}
		// Drain so senders never block after a write error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

// sortByIndex restores input order after parallel collection.
func sortByIndex(rs []pipeline.Result) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Index < rs[j].Index })
}

// IsBrokenPipe reports whether an error is a broken or closed pipe, so
// `seqcomplex ... | head` exits clean.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// OpenOutput opens path for writing, gzipping by .gz suffix. "-" or ""
// returns fallback (the app's stdout) with a no-op closer.
func OpenOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return fallback, func() error { return nil }, nil
	}
	fh, err := xopen.Wopen(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}
