package experience

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestExtract_FindsCompanyAfterAt(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}

	entries := extractor.Extract("I worked at Acme Corp as a developer")
	require.Len(t, entries, 1)

	assert.True(t, len(entries[0].Company) > 0)
	assert.Contains(t, entries[0].Company, "Acme Corp")
}

func TestExtract_NoCompanies(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}

	entries := extractor.Extract("no capitalized employers here")
	assert.Empty(t, entries)
}

func TestExtract_LimitsToFiveEntries(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}

	var text string
	for i := 0; i < 8; i++ {
		text += fmt.Sprintf("Worked at Company%c Inc. ", 'A'+rune(i))
	}

	entries := extractor.Extract(text)
	assert.Len(t, entries, 5)
}

func TestExtract_EndYearsDescendByIndex(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}
	text := "Worked at Alpha Inc. Then at Beta Ltd. Then at Gamma Corp."

	entries := extractor.Extract(text)
	require.Len(t, entries, 3)

	for i, entry := range entries {
		endYear := 2024 - i
		assert.Equal(t, fmt.Sprintf("%d-12-31", endYear), entry.EndDate)
		assert.Equal(t, fmt.Sprintf("%d-01-01", endYear-entry.DurationYears), entry.StartDate)
	}
}

func TestExtract_DurationWithinRange(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}
	text := "Worked at Alpha Inc. Then at Beta Ltd. Then at Gamma Corp."

	entries := extractor.Extract(text)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		assert.GreaterOrEqual(t, entry.DurationYears, 1)
		assert.LessOrEqual(t, entry.DurationYears, 4)
	}
}

func TestExtract_TitleFromFixedSet(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}
	text := "Worked at Alpha Inc. Then at Beta Ltd."

	entries := extractor.Extract(text)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		assert.Contains(t, titles, entry.Title)
	}
}

func TestExtract_DescriptionNamesCompany(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}

	entries := extractor.Extract("employed at Initech Inc")
	require.Len(t, entries, 1)

	assert.Equal(t, fmt.Sprintf("Worked on various projects at %s", entries[0].Company), entries[0].Description)
}

func TestExtract_Deterministic(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}
	text := "Worked at Alpha Inc. Then at Beta Ltd. Then at Gamma Corp."

	first := extractor.Extract(text)
	second := extractor.Extract(text)

	assert.Equal(t, first, second)
}

func TestExtract_SynthesisIgnoresDateText(t *testing.T) {
	extractor := &Extractor{Now: fixedClock}

	// The document claims 1998-2003; synthesized dates must come from the
	// company hit alone, anchored at the current year.
	entries := extractor.Extract("From 1998 to 2003 I worked at Initech Inc")
	require.Len(t, entries, 1)

	assert.Equal(t, "2024-12-31", entries[0].EndDate)
}
