package extraction

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeTempDocx builds a minimal DOCX archive with one run of already
// XML-escaped text per paragraph.
func writeTempDocx(t *testing.T, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.docx")

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct{ name, content string }{
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", rels},
	} {
		w, err := zw.Create(entry.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entry.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// writeTempPDF builds a one-page PDF with a single uncompressed text stream,
// computing xref offsets as it assembles the body.
func writeTempPDF(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")

	stream := fmt.Sprintf("BT (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestExtractText_PlainText(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "I worked at Acme Corp as a python developer")

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "I worked at Acme Corp as a python developer", text)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "resume.TXT", "uppercase extension")

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "uppercase extension", text)
}

func TestExtractText_DocxParagraphsJoinedWithNewlines(t *testing.T) {
	path := writeTempDocx(t, []string{"Worked at Acme Corp", "Skills: python and sql"})

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Worked at Acme Corp\nSkills: python and sql", text)
}

func TestExtractText_DocxUnescapesEntities(t *testing.T) {
	path := writeTempDocx(t, []string{"R&amp;D engineer with python &lt;3 years&gt;"})

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "R&D engineer with python <3 years>", text)
}

func TestExtractText_PDFSinglePage(t *testing.T) {
	path := writeTempPDF(t, "Worked at Acme Corp as a python developer")

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Worked at Acme Corp as a python developer")
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "resume.xml", "<resume/>")

	_, err := ExtractText(path)
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	require.True(t, errors.As(err, &formatErr), "error should be UnsupportedFormatError")
	assert.Equal(t, ".xml", formatErr.Extension)
}

func TestExtractText_NoExtension(t *testing.T) {
	path := writeTempFile(t, "resume", "no extension at all")

	_, err := ExtractText(path)

	var formatErr *UnsupportedFormatError
	require.True(t, errors.As(err, &formatErr), "error should be UnsupportedFormatError")
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractText_CorruptPDF(t *testing.T) {
	path := writeTempFile(t, "resume.pdf", "this is not a pdf")

	_, err := ExtractText(path)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr), "error should be ExtractionError")
	assert.Equal(t, path, extractionErr.Path)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	path := writeTempFile(t, "resume.docx", "this is not a zip archive")

	_, err := ExtractText(path)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr), "error should be ExtractionError")
}

func TestExtractText_EmptyTextFile(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "")

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Empty(t, text)
}
