// internal/alphabet/alphabet.go
package alphabet

import (
	"math/bits"

	"github.com/pkg/errors"
)

// ErrIllegalByte marks an input byte outside the configured alphabet.
var ErrIllegalByte = errors.New("byte outside alphabet")

// Alphabet is an ordered set of allowed symbol bytes.
type Alphabet struct {
	name    string
	symbols []byte
}

// New builds an alphabet from a unique, ordered symbol set.
func New(name string, symbols []byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, errors.New("empty alphabet")
	}
	var seen [256]bool
	for _, b := range symbols {
		if seen[b] {
			return nil, errors.Errorf("duplicate symbol %q in alphabet %s", b, name)
		}
		seen[b] = true
	}
	return &Alphabet{name: name, symbols: append([]byte(nil), symbols...)}, nil
}

func mustNew(name string, symbols string) *Alphabet {
	a, err := New(name, []byte(symbols))
	if err != nil {
		panic(err)
	}
	return a
}

// DNA is the plain nucleotide alphabet, both cases, with N.
func DNA() *Alphabet { return mustNew("dna", "ACGTNacgtn") }

// IUPAC is the full IUPAC nucleotide alphabet, both cases.
// Upper and lower case rank separately, so soft-masked bases keep
// their own k-mer identity.
func IUPAC() *Alphabet { return mustNew("iupac", "ACGTURYSWKMBDHVNacgturyswkmbdhvn") }

func (a *Alphabet) Name() string { return a.name }
func (a *Alphabet) Len() int     { return len(a.symbols) }

// Symbols returns a copy of the symbol set in rank order.
func (a *Alphabet) Symbols() []byte { return append([]byte(nil), a.symbols...) }

// RankTransform maps alphabet bytes to dense ranks 0..n-1 so k-mers can
// be packed into uint64 codes. Immutable after construction; safe for
// concurrent readers.
type RankTransform struct {
	alpha *Alphabet
	ranks [256]int16 // -1 for bytes outside the alphabet
	bits  uint
}

// NewRankTransform builds the rank table for a. Ranks follow the
// alphabet's symbol order.
func NewRankTransform(a *Alphabet) *RankTransform {
	rt := &RankTransform{alpha: a}
	for i := range rt.ranks {
		rt.ranks[i] = -1
	}
	for i, b := range a.symbols {
		rt.ranks[b] = int16(i)
	}
	rt.bits = uint(bits.Len(uint(len(a.symbols) - 1)))
	if rt.bits == 0 {
		rt.bits = 1
	}
	return rt
}

func (rt *RankTransform) Alphabet() *Alphabet { return rt.alpha }

// Bits is the number of bits one rank occupies inside a k-mer code.
func (rt *RankTransform) Bits() uint { return rt.bits }

// Rank returns the rank of b, or -1 if b is not in the alphabet.
func (rt *RankTransform) Rank(b byte) int { return int(rt.ranks[b]) }

// MaxK is the largest k-mer length whose code fits a uint64, capped at 12
// so codes stay collision-free for every supported alphabet width.
func (rt *RankTransform) MaxK() int {
	m := 64 / int(rt.bits)
	if m > 12 {
		m = 12
	}
	return m
}

// ByName resolves an alphabet flag value.
func ByName(name string) (*Alphabet, error) {
	switch name {
	case "dna":
		return DNA(), nil
	case "iupac":
		return IUPAC(), nil
	default:
		return nil, errors.Errorf("unknown alphabet %q (dna | iupac)", name)
	}
}
