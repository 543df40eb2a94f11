// internal/complexity/merge.go
package complexity

// Merge collapses intervals sorted by start into maximal spans with a
// single left-to-right sweep. The current span absorbs the next one
// only while next.Start < cur.End: two intervals that exactly abut
// (next.Start == cur.End) stay separate. The detector's sweep never
// produces that boundary for a fixed window size, but callers merging
// hand-built intervals will observe it.
func Merge(raw []Interval) []Interval {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(raw))
	cur := raw[0]
	for _, iv := range raw[1:] {
		if iv.Start < cur.End {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	return append(out, cur)
}
