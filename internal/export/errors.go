// Package export serializes analysis results to tabular text or a
// multi-sheet spreadsheet.
package export

import "fmt"

// UnsupportedExportFormatError indicates the requested export format is not
// one of the supported targets.
type UnsupportedExportFormatError struct {
	Format string
}

func (e *UnsupportedExportFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q: please use 'csv' or 'excel'", e.Format)
}

// WriteError represents a failure assembling the export output
type WriteError struct {
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export write error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export write error: %s", e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
