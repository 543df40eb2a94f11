// internal/filter/zscore.go
package filter

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Score is one "id <tab> score" input line.
type Score struct {
	ID    string
	Value float64
}

// ParseScores reads tab-separated id/score lines. Blank lines are
// skipped; anything else malformed is fatal with its line number.
func ParseScores(r io.Reader) ([]Score, error) {
	var scores []Score
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, val, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, errors.Errorf("line %d: expected 'id<TAB>score', got %q", lineNo, line)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad score for %q", lineNo, strings.TrimSpace(id))
		}
		scores = append(scores, Score{ID: strings.TrimSpace(id), Value: v})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scores")
	}
	return scores, nil
}

// Stats returns the mean and sample standard deviation of the batch.
// At least 2 scores are required (sample variance divides by n-1).
func Stats(scores []Score) (mean, sd float64, err error) {
	if len(scores) < 2 {
		return 0, 0, errors.Errorf("z-score filtering needs at least 2 scores, got %d", len(scores))
	}
	vals := make([]float64, len(scores))
	for i, s := range scores {
		vals[i] = s.Value
	}
	return stat.Mean(vals, nil), stat.StdDev(vals, nil), nil
}

// Keep returns the ids whose z-score is strictly above threshold, or
// strictly below it when invert is set. With zero spread every z-score
// is NaN and nothing is kept; callers should warn on sd == 0.
func Keep(scores []Score, mean, sd, threshold float64, invert bool) []string {
	var ids []string
	for _, s := range scores {
		z := (s.Value - mean) / sd
		keep := z > threshold
		if invert {
			keep = z < threshold
		}
		if keep {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
