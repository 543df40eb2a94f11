// internal/complexity/score.go
package complexity

import (
	"seqcomplex/internal/alphabet"
	"seqcomplex/internal/kmer"
)

// Score is a whole-sequence complexity summary: the number of distinct
// k-mers over the sequence length.
type Score struct {
	Distinct int
	Length   int
	Ratio    float64
}

// ScoreSequence counts distinct k-mer codes across all of seq. An empty
// or shorter-than-k sequence scores Distinct 0, Ratio 0 (valid "no
// signal", not an error).
func ScoreSequence(seq []byte, k int, rt *alphabet.RankTransform) (Score, error) {
	it, err := kmer.NewIterator(seq, k, rt)
	if err != nil {
		return Score{}, err
	}
	set := make(map[uint64]struct{}, 1<<10)
	for {
		code, ok, err := it.Next()
		if err != nil {
			return Score{}, err
		}
		if !ok {
			break
		}
		set[code] = struct{}{}
	}
	s := Score{Distinct: len(set), Length: len(seq)}
	if s.Length > 0 {
		s.Ratio = float64(s.Distinct) / float64(s.Length)
	}
	return s, nil
}
