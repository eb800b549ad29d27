package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mnb-0/cvscan/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "cvscan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(id string, startedAt time.Time) *ports.RunRecord {
	return &ports.RunRecord{
		ID:        id,
		Position:  "Data Scientist",
		StartedAt: startedAt,
		Processed: 2,
		Documents: []ports.DocumentReport{
			{Name: "alice_cv", Score: 80.0, Matched: []string{"Python"}},
			{Name: "bob_cv", Score: 52.0, PenaltyApplied: true},
		},
		Aggregate: []ports.AlgorithmReport{
			{Algorithm: "Naive", TimeMs: 1.5, Comparisons: 1234},
		},
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	s := newTestStore(t)
	rec := sampleRecord("run-1", time.Now().UTC().Truncate(time.Millisecond))

	require.NoError(t, s.SaveRun(rec))

	got, err := s.LoadRun("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Position, got.Position)
	assert.Equal(t, rec.Processed, got.Processed)
	require.Len(t, got.Documents, 2)
	assert.Equal(t, "alice_cv", got.Documents[0].Name)
	assert.True(t, got.Documents[1].PenaltyApplied)
}

func TestSaveRunAssignsID(t *testing.T) {
	s := newTestStore(t)
	rec := sampleRecord("", time.Now())

	require.NoError(t, s.SaveRun(rec))
	assert.NotEmpty(t, rec.ID)

	got, err := s.LoadRun(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestLoadRunMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.LoadRun("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveRun(sampleRecord("old", base)))
	require.NoError(t, s.SaveRun(sampleRecord("new", base.Add(time.Hour))))
	require.NoError(t, s.SaveRun(sampleRecord("mid", base.Add(time.Minute))))

	summaries, err := s.ListRuns()
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, "mid", summaries[1].ID)
	assert.Equal(t, "old", summaries[2].ID)
	assert.Equal(t, 2, summaries[0].Documents)
}

func TestListRunsEmptyStore(t *testing.T) {
	s := newTestStore(t)

	summaries, err := s.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
