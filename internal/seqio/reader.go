// internal/seqio/reader.go
package seqio

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Input format constraints. Auto accepts whatever the parser detects.
const (
	FormatAuto  = "auto"
	FormatFasta = "fasta"
	FormatFastq = "fastq"
)

// ValidFormat reports whether s names a supported format constraint.
func ValidFormat(s string) bool {
	return s == FormatAuto || s == FormatFasta || s == FormatFastq
}

// Record is one parsed sequence record. Seq and Qual are private copies:
// the underlying fastx reader reuses its buffers, and records cross
// goroutine boundaries downstream. Index is assigned by the caller in
// input order.
type Record struct {
	Index int
	ID    string
	Name  string // full header line (ID plus description)
	Seq   []byte
	Qual  []byte // empty for FASTA
}

// StreamPath reads records from path ("-" = stdin; gzip transparent)
// and calls emit for each, in input order. Any malformed record aborts
// the stream with an error; there is no skip-and-continue.
func StreamPath(ctx context.Context, path, format string, emit func(Record) error) error {
	reader, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer reader.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}

		hasQual := len(rec.Seq.Qual) > 0
		if format == FormatFastq && !hasQual {
			return errors.Errorf("%s: record %s has no quality but --format fastq was requested", path, rec.ID)
		}
		if format == FormatFasta && hasQual {
			return errors.Errorf("%s: record %s carries quality but --format fasta was requested", path, rec.ID)
		}

		r := Record{
			ID:   string(rec.ID),
			Name: string(rec.Name),
			Seq:  append([]byte(nil), rec.Seq.Seq...),
		}
		if hasQual {
			r.Qual = append([]byte(nil), rec.Seq.Qual...)
		}
		if err := emit(r); err != nil {
			return err
		}
	}
}
