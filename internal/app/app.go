// Package app wires the adapters and domain logic together: extract
// documents, run the matchers, score, rank, and persist the run.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mnb-0/cvscan/internal/adapters/report"
	"github.com/Mnb-0/cvscan/internal/domain/batch"
	"github.com/Mnb-0/cvscan/internal/domain/match"
	"github.com/Mnb-0/cvscan/internal/domain/score"
	"github.com/Mnb-0/cvscan/internal/ports"
)

// App is the top-level container wiring all components together.
type App struct {
	Config    *Config
	Extractor ports.Extractor
	Store     ports.Storage

	log *zap.Logger
}

// New creates an App from its already-constructed dependencies. The
// store may be nil when persistence is not wanted (single-file analyze).
func New(cfg *Config, ex ports.Extractor, store ports.Storage, log *zap.Logger) *App {
	return &App{Config: cfg, Extractor: ex, Store: store, log: log}
}

// Analysis is the outcome of analyzing one document.
type Analysis struct {
	Name    string
	Score   score.Document
	Matched []string
	Missing []string
	Runs    []match.Run
}

// AnalyzeFile extracts one document and scores it against kw.
func (a *App) AnalyzeFile(path string, kw score.Keywords) (*Analysis, error) {
	if kw.Empty() {
		return nil, score.ErrNoKeywords
	}
	cfg := a.Config.ScoreConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	text, err := a.Extractor.Extract(path)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("no usable text in %s", filepath.Base(path))
	}

	runs := match.RunAll(text, kw.All(), cfg.CaseSensitive)
	var matched map[string]bool
	for _, r := range runs {
		if r.Algorithm == match.KMP {
			matched = r.Matched()
		}
	}
	found, missing := kw.Split(matched)

	return &Analysis{
		Name:    documentID(path),
		Score:   score.Compute(matched, kw, cfg),
		Matched: found,
		Missing: missing,
		Runs:    runs,
	}, nil
}

// BatchDir extracts every supported document under dir, runs the batch
// analysis against kw, and persists the run record (history store and
// report file, when configured). Extraction failures demote a document
// to skipped; they never abort the run.
func (a *App) BatchDir(dir, position string, kw score.Keywords) (*batch.Result, *ports.RunRecord, error) {
	docs, err := a.collectDocuments(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(docs) == 0 {
		return nil, nil, fmt.Errorf("no supported documents in %s", dir)
	}

	startedAt := time.Now().UTC()
	res, err := batch.Run(docs, kw, a.Config.ScoreConfig(), a.Config.Batch.Workers)
	if err != nil {
		return nil, nil, err
	}

	rec := buildRecord(position, startedAt, res)
	if a.Store != nil {
		if err := a.Store.SaveRun(rec); err != nil {
			a.log.Warn("run history not saved", zap.Error(err))
		}
	}
	if a.Config.Paths.Report != "" {
		if err := report.Write(a.Config.Paths.Report, rec); err != nil {
			a.log.Warn("report not written", zap.Error(err))
		} else {
			a.log.Info("report written", zap.String("path", a.Config.Paths.Report))
		}
	}
	return res, rec, nil
}

// Watch re-runs the batch whenever a document under dir changes. Change
// bursts are coalesced: events arriving while a run is in flight trigger
// exactly one follow-up run. Blocks until ctx is done.
func (a *App) Watch(ctx context.Context, w ports.Watcher, dir, position string, kw score.Keywords, onRun func(*batch.Result)) error {
	trigger := make(chan struct{}, 1)
	err := w.Watch(dir, func(path string) {
		a.log.Info("document changed", zap.String("path", path))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.Stop()

	// Initial run before any change arrives.
	if res, _, err := a.BatchDir(dir, position, kw); err != nil {
		a.log.Warn("initial batch failed", zap.Error(err))
	} else {
		onRun(res)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			res, _, err := a.BatchDir(dir, position, kw)
			if err != nil {
				a.log.Warn("batch failed", zap.Error(err))
				continue
			}
			onRun(res)
		}
	}
}

// collectDocuments walks dir, extracts every supported document, and
// returns them sorted by ID. Duplicate IDs (the same CV present as both
// PDF and DOCX, or as a "name (1).pdf" re-download) keep the PDF,
// or the first seen within a format.
func (a *App) collectDocuments(dir string) ([]batch.Document, error) {
	type candidate struct {
		path string
		ext  string
	}
	byID := make(map[string]candidate)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !a.Extractor.Supports(path) {
			return nil
		}
		id := documentID(path)
		ext := strings.ToLower(filepath.Ext(path))
		if prev, ok := byID[id]; ok {
			if prev.ext == ".pdf" || prev.ext == ext {
				a.log.Info("duplicate document skipped",
					zap.String("kept", prev.path), zap.String("skipped", path))
				return nil
			}
		}
		byID[id] = candidate{path: path, ext: ext}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]batch.Document, 0, len(ids))
	for _, id := range ids {
		c := byID[id]
		text, err := a.Extractor.Extract(c.path)
		if err != nil {
			a.log.Warn("extraction failed, document skipped",
				zap.String("path", c.path), zap.Error(err))
			text = ""
		}
		docs = append(docs, batch.Document{ID: id, Text: text})
	}
	return docs, nil
}

// copyMarker matches browser re-download suffixes like "cv (1).pdf".
var copyMarker = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// documentID derives a stable identifier from a document path: base name
// without extension, copy markers removed, whitespace collapsed to
// underscores, lowercased.
func documentID(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = copyMarker.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), "_")
	return strings.ToLower(name)
}

// buildRecord converts a batch result into the persisted record shape.
func buildRecord(position string, startedAt time.Time, res *batch.Result) *ports.RunRecord {
	rec := &ports.RunRecord{
		ID:          uuid.NewString(),
		Position:    position,
		StartedAt:   startedAt,
		Processed:   res.Processed,
		Skipped:     res.Skipped,
		TotalTimeMs: float64(res.Elapsed.Microseconds()) / 1000,
	}
	for _, dr := range res.Ranking {
		doc := ports.DocumentReport{
			Name:           dr.ID,
			Score:          dr.Score.Weighted,
			PenaltyApplied: dr.Score.PenaltyApplied,
			Matched:        dr.Matched,
			Missing:        dr.Missing,
		}
		for _, run := range dr.Runs {
			doc.Algorithms = append(doc.Algorithms, ports.AlgorithmReport{
				Algorithm:   run.Algorithm.String(),
				TimeMs:      float64(run.Elapsed.Microseconds()) / 1000,
				Comparisons: run.TotalComparisons,
			})
		}
		rec.Documents = append(rec.Documents, doc)
	}
	for _, tot := range res.Totals {
		rec.Aggregate = append(rec.Aggregate, ports.AlgorithmReport{
			Algorithm:   tot.Algorithm.String(),
			TimeMs:      float64(tot.Elapsed.Microseconds()) / 1000,
			Comparisons: tot.Comparisons,
		})
	}
	return rec
}
