// Package jobconfig loads job description keyword lists from JSON files.
// Each file describes one position: its required skills, preferred skills
// and the tools and frameworks worth matching but not scoring.
package jobconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Mnb-0/cvscan/internal/domain/score"
)

// Position mirrors the job description JSON format.
type Position struct {
	Title              string   `json:"title"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	ToolsAndFrameworks []string `json:"tools_and_frameworks"`
}

// Keywords converts the position into the scoring classification:
// union deduplicated, mandatory-first priority.
func (p *Position) Keywords() score.Keywords {
	return score.NewKeywords(p.RequiredSkills, p.PreferredSkills, p.ToolsAndFrameworks)
}

// LoadFile reads one position file. A missing title falls back to the
// file name, underscores replaced by spaces.
func LoadFile(path string) (*Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job description: %w", err)
	}

	var p Position
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse job description %s: %w", filepath.Base(path), err)
	}
	if p.Title == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		p.Title = strings.ReplaceAll(base, "_", " ")
	}
	return &p, nil
}

// LoadDir reads every *.json position file in dir, sorted by title.
func LoadDir(dir string) ([]Position, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read job descriptions dir: %w", err)
	}

	var positions []Position
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		positions = append(positions, *p)
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].Title < positions[j].Title })
	return positions, nil
}

// Find returns the position whose title matches, case-insensitively.
func Find(positions []Position, title string) (*Position, error) {
	for i := range positions {
		if strings.EqualFold(positions[i].Title, title) {
			return &positions[i], nil
		}
	}
	return nil, fmt.Errorf("unknown position %q", title)
}
