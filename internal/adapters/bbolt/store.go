// Package bbolt implements the ports.Storage interface using bbolt
// (embedded B+ tree). Run records live in a single bucket as JSON blobs
// keyed by run ID. Writes are transactional — a crash mid-write cannot
// corrupt previously committed runs.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/Mnb-0/cvscan/internal/ports"
)

var bucketRuns = []byte("runs")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a completed run record, assigning a UUID when the
// record arrives without one.
func (s *Store) SaveRun(rec *ports.RunRecord) error {
	if rec == nil {
		return fmt.Errorf("nil run record")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", rec.ID, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		return b.Put([]byte(rec.ID), data)
	})
}

// ListRuns returns summaries of all stored runs, newest first.
func (s *Store) ListRuns() ([]ports.RunSummary, error) {
	var summaries []ports.RunSummary

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var rec ports.RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt run %s: %w", k, err)
			}
			summaries = append(summaries, ports.RunSummary{
				ID:        rec.ID,
				Position:  rec.Position,
				StartedAt: rec.StartedAt,
				Documents: rec.Processed,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].StartedAt.Equal(summaries[j].StartedAt) {
			return summaries[i].StartedAt.After(summaries[j].StartedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// LoadRun retrieves a run by ID. Returns nil, nil if absent.
func (s *Store) LoadRun(id string) (*ports.RunRecord, error) {
	var rec *ports.RunRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(id))
		if v == nil {
			return nil
		}
		rec = &ports.RunRecord{}
		if err := json.Unmarshal(v, rec); err != nil {
			return fmt.Errorf("corrupt run %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
