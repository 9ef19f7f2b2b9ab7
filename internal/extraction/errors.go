// Package extraction converts source documents (PDF, DOCX, plain text) into
// a single plain-text string for analysis.
package extraction

import "fmt"

// UnsupportedFormatError indicates the input file has an extension the
// extractor does not recognize.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: please use PDF, DOCX, or TXT", e.Extension)
}

// ExtractionError indicates the container format itself is malformed,
// e.g. a corrupt PDF or DOCX archive.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
