// Package batch applies matching and scoring across a document corpus,
// producing a deterministic ranking and corpus-wide per-algorithm
// comparison and time totals.
package batch

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Mnb-0/cvscan/internal/domain/match"
	"github.com/Mnb-0/cvscan/internal/domain/score"
)

// Document is one unit of work: an identifier and its extracted text.
// Empty text marks a failed extraction; the run skips it without aborting.
type Document struct {
	ID   string
	Text string
}

// DocumentResult is one document's score plus its per-algorithm runs.
type DocumentResult struct {
	ID      string
	Score   score.Document
	Matched []string
	Missing []string
	Runs    []match.Run
}

// Totals accumulates one algorithm's comparisons and time over the corpus.
type Totals struct {
	Algorithm   match.Algorithm
	Comparisons int64
	Elapsed     time.Duration
}

// Result is the outcome of a batch run.
type Result struct {
	Ranking   []DocumentResult // score descending, ID ascending on ties
	Totals    []Totals         // in match.Algorithms order
	Processed int
	Skipped   int
	Elapsed   time.Duration
}

// Run scores every document against one fixed keyword classification.
// workers bounds the number of documents analyzed concurrently; zero or
// negative means one per available CPU. Per-document work runs in
// parallel, then ranking and totals are merged in a single fixed pass,
// so the output is identical at any concurrency degree.
//
// Scoring presence comes from the KMP run; all three algorithms still
// execute per document for the performance totals.
func Run(docs []Document, kw score.Keywords, cfg score.Config, workers int) (*Result, error) {
	if kw.Empty() {
		return nil, score.ErrNoKeywords
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	patterns := kw.All()

	results := make([]*DocumentResult, len(docs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = analyzeOne(docs[idx], patterns, kw, cfg)
			}
		}()
	}
	for idx, doc := range docs {
		if doc.Text == "" {
			continue
		}
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	res := &Result{Totals: make([]Totals, 0, len(match.Algorithms))}
	for _, a := range match.Algorithms {
		res.Totals = append(res.Totals, Totals{Algorithm: a})
	}
	for _, dr := range results {
		if dr == nil {
			res.Skipped++
			continue
		}
		res.Processed++
		res.Ranking = append(res.Ranking, *dr)
		for i, run := range dr.Runs {
			res.Totals[i].Comparisons += run.TotalComparisons
			res.Totals[i].Elapsed += run.Elapsed
		}
	}

	sort.SliceStable(res.Ranking, func(i, j int) bool {
		if res.Ranking[i].Score.Weighted != res.Ranking[j].Score.Weighted {
			return res.Ranking[i].Score.Weighted > res.Ranking[j].Score.Weighted
		}
		return res.Ranking[i].ID < res.Ranking[j].ID
	})

	res.Elapsed = time.Since(start)
	return res, nil
}

// analyzeOne runs all algorithms over one document and scores it from the
// KMP run's presence map.
func analyzeOne(doc Document, patterns []string, kw score.Keywords, cfg score.Config) *DocumentResult {
	runs := match.RunAll(doc.Text, patterns, cfg.CaseSensitive)

	var matched map[string]bool
	for _, r := range runs {
		if r.Algorithm == match.KMP {
			matched = r.Matched()
		}
	}

	found, missing := kw.Split(matched)
	return &DocumentResult{
		ID:      doc.ID,
		Score:   score.Compute(matched, kw, cfg),
		Matched: found,
		Missing: missing,
		Runs:    runs,
	}
}
