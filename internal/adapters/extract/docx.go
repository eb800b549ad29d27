package extract

import (
	"strings"

	"github.com/unidoc/unioffice/document"
)

// readDOCX extracts paragraph text, one line per paragraph.
func readDOCX(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
