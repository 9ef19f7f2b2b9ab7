package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Sheet names in the exported workbook.
const (
	sheetOverview        = "Overview"
	sheetSkills          = "Skills"
	sheetExperience      = "Experience"
	sheetRecommendations = "Recommendations"
	sheetMissingSkills   = "Missing Skills"
)

// exportExcel produces a multi-sheet workbook. The Overview sheet is always
// present; data sheets are created only for non-empty collections.
func (e *Exporter) exportExcel(result *types.AnalysisResult) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// The default sheet becomes Overview.
	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return nil, &WriteError{Message: "failed to create overview sheet", Cause: err}
	}
	overviewRows := [][]any{
		{"Field", "Value"},
		{"Profession", result.Profession},
		{"Experience Level", string(result.ExperienceLevel)},
		{"Relevance Score", fmt.Sprintf("%.2f%%", result.RelevanceScore)},
	}
	if err := writeRows(f, sheetOverview, overviewRows); err != nil {
		return nil, err
	}

	if len(result.Skills) > 0 {
		if err := e.writeSkillsSheet(f, sheetSkills, result.Skills, "Rating"); err != nil {
			return nil, err
		}
	}

	if len(result.Experience) > 0 {
		rows := [][]any{{"Title", "Company", "Description", "Start Date", "End Date", "Duration (Years)"}}
		for _, entry := range result.Experience {
			rows = append(rows, []any{
				entry.Title, entry.Company, entry.Description,
				entry.StartDate, entry.EndDate, entry.DurationYears,
			})
		}
		if err := newSheetWithRows(f, sheetExperience, rows); err != nil {
			return nil, err
		}
	}

	if len(result.Recommendations) > 0 {
		rows := [][]any{{"Recommendation"}}
		for _, rec := range result.Recommendations {
			rows = append(rows, []any{rec})
		}
		if err := newSheetWithRows(f, sheetRecommendations, rows); err != nil {
			return nil, err
		}
	}

	if len(result.MissingSkills) > 0 {
		if err := e.writeSkillsSheet(f, sheetMissingSkills, result.MissingSkills, "Importance"); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &WriteError{Message: "failed to serialize workbook", Cause: err}
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeSkillsSheet(f *excelize.File, sheet string, m types.SkillScores, valueHeader string) error {
	rows := [][]any{{"Skill", valueHeader}}
	names, scores := e.orderedSkills(m)
	for i, name := range names {
		rows = append(rows, []any{name, scores[i]})
	}
	return newSheetWithRows(f, sheet, rows)
}

func newSheetWithRows(f *excelize.File, sheet string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return &WriteError{Message: fmt.Sprintf("failed to create sheet %s", sheet), Cause: err}
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return &WriteError{Message: "failed to compute cell name", Cause: err}
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return &WriteError{Message: fmt.Sprintf("failed to write row %d of %s", i+1, sheet), Cause: err}
		}
	}
	return nil
}
