package ports

// Extractor pulls plain text out of a document file. Implementations
// handle one or more file formats; Supports gates dispatch by path.
// An empty extracted string means the document has no usable text and
// the batch layer will skip it without aborting the run.
type Extractor interface {
	// Supports reports whether this extractor can read the file at path,
	// judged by its extension.
	Supports(path string) bool

	// Extract returns the cleaned plain text of the document at path.
	Extract(path string) (string, error)
}
