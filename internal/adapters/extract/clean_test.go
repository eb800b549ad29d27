package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "python sql go", "python sql go"},
		{"punctuation keeps boundaries", "python,sql;go", "python sql go"},
		{"diacritics decompose", "résumé", "resume"},
		{"tech suffixes survive", "c++ c# node.js", "c++ c# node.js"},
		{"trailing dot trimmed", "experience. done.", "experience done"},
		{"whitespace collapsed", "a  lot\n\tof   space", "lot of space"},
		{"single letters filtered", "x c r q", "c r"},
		{"case preserved", "Python SQL", "Python SQL"},
		{"underscore kept", "snake_case", "snake_case"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestSupports(t *testing.T) {
	e := New(zap.NewNop())

	assert.True(t, e.Supports("cv.pdf"))
	assert.True(t, e.Supports("CV.PDF"))
	assert.True(t, e.Supports("resume.docx"))
	assert.False(t, e.Supports("notes.txt"))
	assert.False(t, e.Supports("archive.zip"))
	assert.False(t, e.Supports("no-extension"))
}

func TestExtractUnsupportedType(t *testing.T) {
	e := New(zap.NewNop())
	_, err := e.Extract("notes.txt")
	assert.Error(t, err)
}
