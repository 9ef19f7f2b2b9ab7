package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// experienceHeader is the column order for the experience table.
var experienceHeader = []string{"Title", "Company", "Description", "Start Date", "End Date", "Duration (Years)"}

// exportCSV produces a single text blob: an overview block, a skills table,
// an experience table, and a numbered recommendations list. Sections with
// no data are omitted.
func (e *Exporter) exportCSV(result *types.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("CV Analysis Results\n")
	buf.WriteString(fmt.Sprintf("Profession: %s\n", result.Profession))
	buf.WriteString(fmt.Sprintf("Experience Level: %s\n", result.ExperienceLevel))
	buf.WriteString(fmt.Sprintf("Relevance Score: %.2f%%\n\n", result.RelevanceScore))

	if len(result.Skills) > 0 {
		buf.WriteString("Skills:\n")
		if err := e.writeSkillsTable(&buf, result.Skills, "Rating"); err != nil {
			return nil, err
		}
		buf.WriteString("\n")
	}

	if len(result.Experience) > 0 {
		buf.WriteString("Experience:\n")
		if err := writeExperienceTable(&buf, result.Experience); err != nil {
			return nil, err
		}
		buf.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		buf.WriteString("Missing Skills:\n")
		if err := e.writeSkillsTable(&buf, result.MissingSkills, "Importance"); err != nil {
			return nil, err
		}
		buf.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		buf.WriteString("Recommendations:\n")
		for i, rec := range result.Recommendations {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
	}

	return buf.Bytes(), nil
}

func (e *Exporter) writeSkillsTable(buf *bytes.Buffer, m types.SkillScores, valueHeader string) error {
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Skill", valueHeader}); err != nil {
		return &WriteError{Message: "failed to write skills header", Cause: err}
	}

	names, scores := e.orderedSkills(m)
	for i, name := range names {
		record := []string{name, formatScore(scores[i])}
		if err := w.Write(record); err != nil {
			return &WriteError{Message: "failed to write skill row", Cause: err}
		}
	}

	w.Flush()
	return w.Error()
}

func writeExperienceTable(buf *bytes.Buffer, entries []types.ExperienceEntry) error {
	w := csv.NewWriter(buf)
	if err := w.Write(experienceHeader); err != nil {
		return &WriteError{Message: "failed to write experience header", Cause: err}
	}

	for _, entry := range entries {
		record := []string{
			entry.Title,
			entry.Company,
			entry.Description,
			entry.StartDate,
			entry.EndDate,
			strconv.Itoa(entry.DurationYears),
		}
		if err := w.Write(record); err != nil {
			return &WriteError{Message: "failed to write experience row", Cause: err}
		}
	}

	w.Flush()
	return w.Error()
}

// formatScore renders ratings with two decimals, matching the overview block.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}
