// internal/complexity/detector.go
package complexity

import (
	"github.com/pkg/errors"

	"seqcomplex/internal/alphabet"
	"seqcomplex/internal/kmer"
)

// Interval is a half-open [Start, End) span in sequence byte coordinates.
type Interval struct {
	Start int
	End   int
}

// Len returns the number of bytes the interval covers.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Detector flags low-complexity spans: it slides a Window of up to W
// consecutive k-mer codes across a sequence and emits an interval
// wherever the distinct-code fraction of the window drops below the
// threshold.
type Detector struct {
	k         int
	window    int
	threshold float64
	rt        *alphabet.RankTransform
}

// NewDetector validates parameters once so per-sequence calls can't
// fail on configuration.
func NewDetector(k, window int, threshold float64, rt *alphabet.RankTransform) (*Detector, error) {
	if k < 1 || k > rt.MaxK() {
		return nil, errors.Errorf("k-mer size %d out of range (1..%d for alphabet %s)", k, rt.MaxK(), rt.Alphabet().Name())
	}
	if window < 1 {
		return nil, errors.Errorf("window size %d, must be >= 1", window)
	}
	if threshold < 0 || threshold > 1 {
		return nil, errors.Errorf("threshold %v outside [0,1]", threshold)
	}
	return &Detector{k: k, window: window, threshold: threshold, rt: rt}, nil
}

// FindIntervals returns the raw flagged intervals for seq, in byte
// coordinates, sorted by start. Intervals may overlap; collapse them
// with Merge before masking. A sequence shorter than k yields nil.
//
// The window at k-mer index idx spans bytes [idx, idx+len-1+k) where
// len is the current occupancy; occupancy is below W only when the
// whole k-mer stream is shorter than W, in which case exactly one
// window is evaluated.
func (d *Detector) FindIntervals(seq []byte) ([]Interval, error) {
	it, err := kmer.NewIterator(seq, d.k, d.rt)
	if err != nil {
		return nil, err
	}

	win := NewWindow(d.window)
	if err := win.Fill(it); err != nil {
		return nil, err
	}
	if win.Len() == 0 {
		return nil, nil
	}

	var raw []Interval
	for idx := 0; ; idx++ {
		if float64(win.Distinct())/float64(win.Len()) < d.threshold {
			raw = append(raw, Interval{Start: idx, End: idx + win.Len() - 1 + d.k})
		}
		code, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		win.Advance(code)
	}
	return raw, nil
}
