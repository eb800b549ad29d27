package jobconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "data_scientist.json", `{
		"title": "Data Scientist",
		"required_skills": ["Python", "SQL"],
		"preferred_skills": ["Go"],
		"tools_and_frameworks": ["Docker", "Python"]
	}`)

	p, err := LoadFile(filepath.Join(dir, "data_scientist.json"))
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", p.Title)
	kw := p.Keywords()
	assert.True(t, kw.Mandatory["Python"])
	assert.True(t, kw.Preferred["Go"])
	assert.True(t, kw.Other["Docker"])
	assert.False(t, kw.Other["Python"], "mandatory wins over tools")
}

func TestLoadFileTitleFallback(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "computer_vision_engineer.json", `{"required_skills": ["OpenCV"]}`)

	p, err := LoadFile(filepath.Join(dir, "computer_vision_engineer.json"))
	require.NoError(t, err)
	assert.Equal(t, "computer vision engineer", p.Title)
}

func TestLoadFileBadJSON(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "broken.json", `{`)

	_, err := LoadFile(filepath.Join(dir, "broken.json"))
	assert.Error(t, err)
}

func TestLoadDirSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "b.json", `{"title": "Backend Engineer"}`)
	writeJSON(t, dir, "a.json", `{"title": "ML Engineer"}`)
	writeJSON(t, dir, "notes.txt", `not a position`)

	positions, err := LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, positions, 2)
	assert.Equal(t, "Backend Engineer", positions[0].Title)
	assert.Equal(t, "ML Engineer", positions[1].Title)
}

func TestFind(t *testing.T) {
	positions := []Position{{Title: "Data Scientist"}, {Title: "ML Engineer"}}

	p, err := Find(positions, "data scientist")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", p.Title)

	_, err = Find(positions, "Astronaut")
	assert.Error(t, err)
}
