package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsDocumentChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	events := make(chan string, 16)
	require.NoError(t, w.Watch(dir, func(path string) { events <- path }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.pdf"), []byte("%PDF"), 0644))

	select {
	case path := <-events:
		assert.Equal(t, "cv.pdf", filepath.Base(path))
	case <-time.After(3 * time.Second):
		t.Fatal("no event for created document")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	events := make(chan string, 16)
	require.NoError(t, w.Watch(dir, func(path string) { events <- path }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case path := <-events:
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcherMissingDir(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "missing"), func(string) {})
	assert.Error(t, err)
}
