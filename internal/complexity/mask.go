// internal/complexity/mask.go
package complexity

// lowerTable folds A-Z to a-z and leaves every other byte unchanged, so
// ambiguity codes and already-lowered bases pass through.
var lowerTable = buildLowerTable()

func buildLowerTable() (t [256]byte) {
	for i := range t {
		t[i] = byte(i)
	}
	for b := byte('A'); b <= 'Z'; b++ {
		t[b] = b + ('a' - 'A')
	}
	return t
}

// Masker rewrites bytes covered by merged intervals: either with a
// fixed sentinel byte or by case-folding the original symbol.
type Masker struct {
	lower    bool
	sentinel byte
}

// NewMasker selects the mask policy. sentinel is ignored when lower is
// true.
func NewMasker(lower bool, sentinel byte) *Masker {
	return &Masker{lower: lower, sentinel: sentinel}
}

// Apply returns a new sequence of identical length with the given
// merged, sorted, non-overlapping intervals masked. Every byte index is
// written exactly once: verbatim between intervals, masked inside them.
func (m *Masker) Apply(seq []byte, merged []Interval) []byte {
	out := make([]byte, len(seq))
	prev := 0
	for _, iv := range merged {
		copy(out[prev:iv.Start], seq[prev:iv.Start])
		if m.lower {
			for i := iv.Start; i < iv.End; i++ {
				out[i] = lowerTable[seq[i]]
			}
		} else {
			for i := iv.Start; i < iv.End; i++ {
				out[i] = m.sentinel
			}
		}
		prev = iv.End
	}
	copy(out[prev:], seq[prev:])
	return out
}
