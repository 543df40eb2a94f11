// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"seqcomplex/internal/pipeline"
)

// TSVHeader is the canonical header row for measure output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tlength\tdistinct\tratio"

func writeRow(w io.Writer, r pipeline.Result) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%.4f\n", r.ID, r.Length, r.Distinct, r.Ratio)
	return err
}

// StreamTSV prints one measure row per result as they arrive.
func StreamTSV(w io.Writer, in <-chan pipeline.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV writes a slice of measure rows (used after sorting).
func WriteTSV(w io.Writer, list []pipeline.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}
