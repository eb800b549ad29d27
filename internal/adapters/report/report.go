// Package report writes batch run records to indented JSON files, the
// same shape the run-history store keeps.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mnb-0/cvscan/internal/ports"
)

// Write serializes rec as indented JSON at path, creating parent
// directories as needed. An existing report is overwritten.
func Write(path string, rec *ports.RunRecord) error {
	if rec == nil {
		return fmt.Errorf("nil run record")
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
