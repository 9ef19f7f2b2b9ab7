package extraction

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText reads a source document and returns its plain-text content.
// The reader is chosen by file extension (case-insensitive): .pdf, .docx
// or .txt. Any other extension fails with *UnsupportedFormatError. An
// unreadable file fails with a wrapped I/O error; a malformed container
// fails with *ExtractionError. No size limit is enforced here.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDocx(path)
	case ".txt":
		return extractPlainText(path)
	default:
		return "", &UnsupportedFormatError{Extension: filepath.Ext(path)}
	}
}

// extractPDF concatenates the extracted text of every page. A page with no
// extractable text (e.g. image-only) contributes an empty string rather
// than failing the whole document.
func extractPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("failed to open PDF file: %w", err)
		}
		return "", &ExtractionError{Path: path, Message: "failed to read PDF", Cause: err}
	}
	defer func() { _ = file.Close() }()

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages without extractable text are treated as empty.
			continue
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

// docx body markup: paragraph closers become newlines, remaining tags are dropped.
var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// extractDocx returns the document's paragraph text, paragraph order
// preserved, joined with newline separators.
func extractDocx(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("failed to open DOCX file: %w", err)
		}
		return "", &ExtractionError{Path: path, Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	// Character data in the body XML is entity-escaped; "R&amp;D" must
	// come back as "R&D".
	content = html.UnescapeString(content)

	return strings.TrimRight(content, "\n"), nil
}

// extractPlainText reads the full file content as UTF-8 text.
func extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}
