// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries between the scoring engine and its collaborators.
// Domain logic depends only on these interfaces, never on concrete implementations.
package ports

import "time"

// RunRecord is a completed batch run as persisted to history and written
// to report files. Documents appear in ranking order.
type RunRecord struct {
	ID          string            `json:"id"`
	Position    string            `json:"position"`
	StartedAt   time.Time         `json:"started_at"`
	Processed   int               `json:"documents_processed"`
	Skipped     int               `json:"documents_skipped"`
	TotalTimeMs float64           `json:"total_time_ms"`
	Documents   []DocumentReport  `json:"documents"`
	Aggregate   []AlgorithmReport `json:"aggregate"`
}

// DocumentReport is one document's entry in a run record.
type DocumentReport struct {
	Name           string            `json:"cv_name"`
	Score          float64           `json:"score"`
	PenaltyApplied bool              `json:"penalty_applied"`
	Matched        []string          `json:"matched,omitempty"`
	Missing        []string          `json:"missing,omitempty"`
	Algorithms     []AlgorithmReport `json:"results"`
}

// AlgorithmReport is one algorithm's time and comparison total.
type AlgorithmReport struct {
	Algorithm   string  `json:"algorithm"`
	TimeMs      float64 `json:"time_ms"`
	Comparisons int64   `json:"comparisons"`
}

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	ID        string
	Position  string
	StartedAt time.Time
	Documents int
}

// Storage persists batch run history. Writes must be transactional: a
// crash mid-write cannot corrupt previously committed runs.
type Storage interface {
	// SaveRun persists a completed run record. A record with an empty ID
	// is assigned one.
	SaveRun(rec *RunRecord) error

	// ListRuns returns summaries of all stored runs, newest first.
	ListRuns() ([]RunSummary, error)

	// LoadRun retrieves a run by ID. Returns nil, nil if absent.
	LoadRun(id string) (*RunRecord, error)

	// Close releases the underlying store.
	Close() error
}
