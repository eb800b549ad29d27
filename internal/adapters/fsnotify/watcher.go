// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It recursively watches a CV directory,
// filters out everything but supported document files, and debounces
// rapid events (copying a file in often triggers multiple writes).
package fsnotify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Directories to ignore when watching.
var ignoreDirs = map[string]bool{
	".git":    true,
	".idea":   true,
	".vscode": true,
	"vendor":  true,
}

// Document extensions worth reacting to.
var watchExts = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring dir recursively.
// onChange is called with the absolute path of each changed document.
func (w *Watcher) Watch(dir string, onChange func(path string)) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	// Walk and add all directories. An unreadable root is fatal;
	// inaccessible subtrees are skipped.
	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == absPath {
				return err
			}
			return nil
		}
		if info.IsDir() {
			if ignoreDirs[info.Name()] && path != absPath {
				return filepath.SkipDir
			}
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Debounce state: track last event time per file.
	debounce := make(map[string]time.Time)
	var dmu sync.Mutex
	const debounceInterval = 200 * time.Millisecond

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				// For Create events, add new directories to the watch list.
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if !ignoreDirs[info.Name()] {
							w.fw.Add(path)
						}
					}
				}

				if !watchExts[strings.ToLower(filepath.Ext(path))] {
					continue
				}

				// Debounce: skip if we've seen this file recently.
				dmu.Lock()
				last, exists := debounce[path]
				now := time.Now()
				if exists && now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				debounce[path] = now
				dmu.Unlock()

				onChange(path)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Watch errors are transient; keep going.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
