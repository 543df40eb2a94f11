// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"seqcomplex/internal/alphabet"
	"seqcomplex/internal/complexity"
	"seqcomplex/internal/seqio"
)

// Config controls the per-record complexity pipeline.
type Config struct {
	Threads   int     // worker goroutines (>=1)
	K         int     // k-mer length
	Window    int     // window size in k-mer positions
	Threshold float64 // complexity ratio threshold in [0,1]

	Mask      bool   // mask mode: rewrite records instead of scoring them
	LowerCase bool   // soft mask instead of the sentinel byte
	MaskByte  byte   // sentinel for hard masking
	Format    string // seqio format constraint
}

// Result carries one record's outcome. Measure mode fills Distinct and
// Ratio; mask mode fills Seq/Qual with the rewritten record and
// MaskedBases with the merged interval coverage.
type Result struct {
	Index  int
	ID     string
	Name   string
	Length int

	Distinct int
	Ratio    float64

	Seq         []byte
	Qual        []byte
	MaskedBases int
}

// ForEachRecord streams records from paths through a fixed worker pool
// and hands each Result to visit from a single collector goroutine.
// Workers share only the read-only rank transform. Result order is
// unspecified; re-sort by Index downstream if it matters. The first
// error (read, encode, or visit) cancels the run and is returned.
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	paths []string,
	rt *alphabet.RankTransform,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	var det *complexity.Detector
	if cfg.Mask {
		d, err := complexity.NewDetector(cfg.K, cfg.Window, cfg.Threshold, rt)
		if err != nil {
			return err
		}
		det = d
	}
	masker := complexity.NewMasker(cfg.LowerCase, cfg.MaskByte)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		res Result
		err error
	}
	jobs := make(chan seqio.Record, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					res, err := processRecord(rec, cfg, rt, det, masker)
					select {
					case results <- outcome{res: res, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for o := range results {
			if cerr != nil {
				continue
			}
			if o.err != nil {
				cerr = o.err
				cancel()
				continue
			}
			if err := visit(o.res); err != nil {
				cerr = err
				cancel()
			}
		}
	}()

	// Feed records; a read error is fatal for the whole run.
	var ferr error
	index := 0
feed:
	for _, path := range paths {
		err := seqio.StreamPath(ctx, path, cfg.Format, func(r seqio.Record) error {
			r.Index = index
			index++
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- r:
				return nil
			}
		})
		if err != nil {
			ferr = err
			break feed
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	// A worker/visit error takes precedence: it is what canceled the feed.
	if cerr != nil {
		return cerr
	}
	return ferr
}

func processRecord(
	rec seqio.Record,
	cfg Config,
	rt *alphabet.RankTransform,
	det *complexity.Detector,
	masker *complexity.Masker,
) (Result, error) {
	res := Result{
		Index:  rec.Index,
		ID:     rec.ID,
		Name:   rec.Name,
		Length: len(rec.Seq),
	}

	if !cfg.Mask {
		score, err := complexity.ScoreSequence(rec.Seq, cfg.K, rt)
		if err != nil {
			return res, err
		}
		res.Distinct = score.Distinct
		res.Ratio = score.Ratio
		return res, nil
	}

	raw, err := det.FindIntervals(rec.Seq)
	if err != nil {
		return res, err
	}
	merged := complexity.Merge(raw)
	res.Seq = masker.Apply(rec.Seq, merged)
	res.Qual = rec.Qual
	for _, iv := range merged {
		res.MaskedBases += iv.Len()
	}
	return res, nil
}
