package export

import (
	"github.com/jonathan/cv-analyzer/internal/catalog"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Supported format names.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// Exporter serializes completed analysis results. The catalog provides a
// stable keyword order for skill rows, keeping output deterministic.
type Exporter struct {
	cat *catalog.Catalog
}

// NewExporter creates an Exporter over the given catalog.
func NewExporter(cat *catalog.Catalog) *Exporter {
	return &Exporter{cat: cat}
}

// Export serializes the result in the requested format. Any of skills,
// experience, recommendations or missing skills being empty omits the
// corresponding section or sheet rather than failing. An unknown format
// fails with *UnsupportedExportFormatError.
func (e *Exporter) Export(result *types.AnalysisResult, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return e.exportCSV(result)
	case FormatExcel:
		return e.exportExcel(result)
	default:
		return nil, &UnsupportedExportFormatError{Format: format}
	}
}

// orderedSkills returns the (keyword, score) pairs of m in catalog keyword
// order. Keywords absent from m are skipped.
func (e *Exporter) orderedSkills(m types.SkillScores) ([]string, []float64) {
	var names []string
	var scores []float64
	for _, keyword := range e.cat.Keywords() {
		score, ok := m[keyword]
		if !ok {
			continue
		}
		names = append(names, keyword)
		scores = append(scores, score)
	}
	return names, scores
}
