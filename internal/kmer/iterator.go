// internal/kmer/iterator.go
package kmer

import (
	"github.com/pkg/errors"

	"seqcomplex/internal/alphabet"
)

// ErrInvalidK means k is out of range for the rank transform's width.
var ErrInvalidK = errors.New("invalid k-mer size")

// Iterator yields one packed code per k-mer position of a sequence,
// pulled one at a time. After the first full encode, each code is
// derived from the previous one by a shift-and-or roll, so a pass over
// a sequence of length L costs O(L) regardless of k.
//
// Same k-mer text always yields the same code, independent of position;
// codes are collision-free for k <= rt.MaxK().
type Iterator struct {
	seq []byte
	k   int
	rt  *alphabet.RankTransform

	idx   int // next k-mer position to emit
	end   int // one past the last k-mer position
	first bool

	mask  uint64 // keeps the low k-1 ranks of the previous code
	shift uint
	pre   uint64
}

// NewIterator validates k against rt and positions the iterator at the
// first k-mer. A sequence shorter than k is not an error: the iterator
// is simply exhausted from the start.
func NewIterator(seq []byte, k int, rt *alphabet.RankTransform) (*Iterator, error) {
	if k < 1 || k > rt.MaxK() {
		return nil, errors.Wrapf(ErrInvalidK, "k=%d, alphabet %s allows 1..%d", k, rt.Alphabet().Name(), rt.MaxK())
	}
	it := &Iterator{seq: seq, k: k, rt: rt, first: true}
	it.end = len(seq) - k + 1
	if it.end < 0 {
		it.end = 0
	}
	it.shift = rt.Bits()
	it.mask = (uint64(1) << (it.shift * uint(k-1))) - 1
	return it, nil
}

// Next returns the code at the current position. ok is false once the
// sequence is exhausted. A byte outside the alphabet is fatal.
func (it *Iterator) Next() (code uint64, ok bool, err error) {
	if it.idx >= it.end {
		return 0, false, nil
	}

	if it.first {
		for i := it.idx; i < it.idx+it.k; i++ {
			r := it.rt.Rank(it.seq[i])
			if r < 0 {
				return 0, false, errors.Wrapf(alphabet.ErrIllegalByte, "%q at position %d", it.seq[i], i)
			}
			code = code<<it.shift | uint64(r)
		}
		it.first = false
	} else {
		pos := it.idx + it.k - 1
		r := it.rt.Rank(it.seq[pos])
		if r < 0 {
			return 0, false, errors.Wrapf(alphabet.ErrIllegalByte, "%q at position %d", it.seq[pos], pos)
		}
		code = (it.pre&it.mask)<<it.shift | uint64(r)
	}

	it.pre = code
	it.idx++
	return code, true, nil
}

// Index returns the 0-based position of the last emitted k-mer.
func (it *Iterator) Index() int { return it.idx - 1 }
