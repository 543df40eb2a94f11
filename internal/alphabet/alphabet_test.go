package alphabet

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRankBijection(t *testing.T) {
	for _, a := range []*Alphabet{DNA(), IUPAC()} {
		rt := NewRankTransform(a)
		seen := map[int]byte{}
		for _, b := range a.Symbols() {
			r := rt.Rank(b)
			if r < 0 || r >= a.Len() {
				t.Fatalf("%s: rank of %q = %d, want 0..%d", a.Name(), b, r, a.Len()-1)
			}
			if prev, dup := seen[r]; dup {
				t.Fatalf("%s: rank %d assigned to both %q and %q", a.Name(), r, prev, b)
			}
			seen[r] = b
		}
	}
}

func TestRankOutsideAlphabet(t *testing.T) {
	rt := NewRankTransform(DNA())
	for _, b := range []byte{'?', '@', 'E', ' ', 0} {
		if r := rt.Rank(b); r != -1 {
			t.Errorf("rank of %q = %d, want -1", b, r)
		}
	}
}

func TestBitsAndMaxK(t *testing.T) {
	cases := []struct {
		name    string
		symbols string
		bits    uint
		maxK    int
	}{
		{"acgt", "ACGT", 2, 12},
		{"dna", "ACGTNacgtn", 4, 12},
		{"iupac", "ACGTURYSWKMBDHVNacgturyswkmbdhvn", 5, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := New(c.name, []byte(c.symbols))
			if err != nil {
				t.Fatal(err)
			}
			rt := NewRankTransform(a)
			if rt.Bits() != c.bits {
				t.Errorf("bits = %d, want %d", rt.Bits(), c.bits)
			}
			if rt.MaxK() != c.maxK {
				t.Errorf("maxK = %d, want %d", rt.MaxK(), c.maxK)
			}
		})
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	if _, err := New("bad", []byte("AACGT")); err == nil {
		t.Fatal("expected error for duplicate symbol")
	}
	if _, err := New("empty", nil); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
}

func TestByName(t *testing.T) {
	if a, err := ByName("dna"); err != nil || a.Name() != "dna" {
		t.Fatalf("dna: %v %v", a, err)
	}
	if a, err := ByName("iupac"); err != nil || a.Name() != "iupac" {
		t.Fatalf("iupac: %v %v", a, err)
	}
	if _, err := ByName("protein"); err == nil {
		t.Fatal("expected error for unknown alphabet")
	}
}

func TestErrIllegalByteIsSentinel(t *testing.T) {
	wrapped := errors.Wrap(ErrIllegalByte, "context")
	if !errors.Is(wrapped, ErrIllegalByte) {
		t.Fatal("wrapped ErrIllegalByte not recognized by errors.Is")
	}
}
