// internal/complexity/window.go
package complexity

// CodeStream is the pull contract the detector consumes; kmer.Iterator
// satisfies it.
type CodeStream interface {
	Next() (code uint64, ok bool, err error)
}

// Window is a fixed-capacity FIFO multiset of k-mer codes: a ring of
// the last W codes plus a frequency table keyed by code. Advance and
// Distinct are O(1); the distinct count is maintained incrementally,
// never recomputed by rescanning the ring.
type Window struct {
	buf    []uint64
	head   int
	n      int
	counts map[uint64]int
}

// NewWindow creates an empty window holding at most capacity codes.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{
		buf:    make([]uint64, capacity),
		counts: make(map[uint64]int, capacity),
	}
}

// Fill pulls codes from s until the window is full or the stream ends.
func (w *Window) Fill(s CodeStream) error {
	for w.n < len(w.buf) {
		code, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		w.push(code)
	}
	return nil
}

// Advance evicts the oldest code and admits next.
func (w *Window) Advance(next uint64) {
	w.evict()
	w.push(next)
}

// Distinct returns the number of distinct codes currently present.
func (w *Window) Distinct() int { return len(w.counts) }

// Len returns the current occupancy, at most the capacity.
func (w *Window) Len() int { return w.n }

func (w *Window) push(code uint64) {
	w.buf[(w.head+w.n)%len(w.buf)] = code
	w.n++
	w.counts[code]++
}

func (w *Window) evict() {
	if w.n == 0 {
		return
	}
	code := w.buf[w.head]
	w.head = (w.head + 1) % len(w.buf)
	w.n--
	if c := w.counts[code]; c <= 1 {
		delete(w.counts, code) // no zero-count entries persist
	} else {
		w.counts[code] = c - 1
	}
}
