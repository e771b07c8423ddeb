// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Candidate is a proposed loop. Start and End are sample indices into the
// searched buffer; the loop plays [Start, End). Score is the mean absolute
// difference between the windows after Start and after End, lower is better.
type Candidate struct {
	Start  int
	End    int
	Score  float64
	Window int
}

// Length is the loop length in samples.
func (c Candidate) Length() int { return c.End - c.Start }

// minSpanPerWorker keeps tiny searches on a single goroutine.
const minSpanPerWorker = 256

// Search finds the loop end that best continues the audio after the loop
// start. The start is the first zero crossing at or after
// len(buf)*SearchStart; candidate ends run from start+len(buf)*MinLoopLength
// (at least start+1) up to, but not including, len(buf)-window.
func Search(buf []float64, cfg Config) (Candidate, error) {
	if err := cfg.Validate(); err != nil {
		return Candidate{}, err
	}

	n := len(buf)
	if n == 0 {
		return Candidate{}, ErrNotFound
	}

	start := ZeroCrossing(buf, int(float64(n)*cfg.SearchStart), Forward)
	minLen := int(float64(n) * cfg.MinLoopLength)
	window := int(float64(n) * cfg.MinLoopLength * cfg.WindowSize)

	if window < 1 || start+window > n {
		return Candidate{}, ErrNotFound
	}

	lo, hi := start+max(minLen, 1), n-window
	if lo >= hi {
		return Candidate{}, ErrNotFound
	}

	best := scoreParallel(buf, buf[start:start+window], lo, hi, cfg.Workers)
	if best.End < 0 {
		// Every score was NaN.
		return Candidate{}, ErrNotFound
	}

	best.Start = start
	best.Window = window

	return best, nil
}

type span struct{ lo, hi int }

// scoreParallel splits [lo, hi) into contiguous spans, scores them on a
// worker pool and merges the span winners in scan order.
func scoreParallel(buf, ref []float64, lo, hi, workers int) Candidate {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(1, min(workers, (hi-lo)/minSpanPerWorker))

	spans := make([]span, workers)
	size := (hi - lo + workers - 1) / workers
	for i := range spans {
		spans[i] = span{lo: min(lo+i*size, hi), hi: min(lo+(i+1)*size, hi)}
	}

	results := make([]Candidate, len(spans))
	jobs := make(chan int, len(spans))
	for i := range spans {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = scoreSpan(buf, ref, spans[i])
			}
		}()
	}
	wg.Wait()

	best := Candidate{End: -1, Score: math.Inf(1)}
	for _, r := range results {
		if r.End >= 0 && r.Score <= best.Score {
			best = r
		}
	}

	return best
}

// scoreSpan is the sequential scan over one span. The <= comparison makes
// the last of equally scored ends win.
func scoreSpan(buf, ref []float64, s span) Candidate {
	best := Candidate{End: -1, Score: math.Inf(1)}
	w := float64(len(ref))

	for e := s.lo; e < s.hi; e++ {
		score := floats.Distance(ref, buf[e:e+len(ref)], 1) / w
		if score <= best.Score {
			best.Score = score
			best.End = e
		}
	}

	return best
}
