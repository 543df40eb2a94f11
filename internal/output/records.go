// internal/output/records.go
package output

import (
	"fmt"
	"io"

	"seqcomplex/internal/pipeline"
)

// WriteRecord emits one masked record in the format it came in: FASTQ
// when quality is present, FASTA otherwise. lineWidth wraps FASTA
// sequence lines; 0 disables wrapping. FASTQ sequences are never
// wrapped (four-line records).
func WriteRecord(w io.Writer, r pipeline.Result, lineWidth int) error {
	if len(r.Qual) > 0 {
		_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", r.Name, r.Seq, r.Qual)
		return err
	}
	if _, err := fmt.Fprintf(w, ">%s\n", r.Name); err != nil {
		return err
	}
	if lineWidth <= 0 {
		_, err := fmt.Fprintf(w, "%s\n", r.Seq)
		return err
	}
	for off := 0; off < len(r.Seq); off += lineWidth {
		end := off + lineWidth
		if end > len(r.Seq) {
			end = len(r.Seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", r.Seq[off:end]); err != nil {
			return err
		}
	}
	return nil
}

// StreamRecords writes masked records as they arrive.
func StreamRecords(w io.Writer, in <-chan pipeline.Result, lineWidth int) error {
	for r := range in {
		if err := WriteRecord(w, r, lineWidth); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecords writes a slice of masked records (used after sorting).
func WriteRecords(w io.Writer, list []pipeline.Result, lineWidth int) error {
	for _, r := range list {
		if err := WriteRecord(w, r, lineWidth); err != nil {
			return err
		}
	}
	return nil
}
