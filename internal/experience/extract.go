// Package experience synthesizes work-history entries from company-name hits
// and maps total experience to a seniority band.
package experience

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// maxEntries bounds the synthesized work history.
const maxEntries = 5

// companyPattern matches "at|for|with" followed by a capitalized word
// sequence with an optional corporate suffix.
var companyPattern = regexp.MustCompile(`(?:at|for|with)\s+([A-Z][A-Za-z\s]+(?:Inc|LLC|Ltd|GmbH|AG|SE|Company|Corp)?)`)

// titles is the fixed set a synthesized entry draws its title from.
var titles = []string{
	"Software Developer",
	"Senior Engineer",
	"Project Manager",
	"Data Analyst",
	"Team Lead",
}

// Extractor synthesizes experience entries. The zero value uses the real
// clock; tests can pin Now.
type Extractor struct {
	Now func() time.Time
}

// Extract scans the text for company-name candidates and fabricates one
// entry per company, most recent first. The work history is synthetic:
// dates, titles and durations are derived from the company name alone, not
// from any date text in the document. At most five entries are produced.
//
// Derivation is a hash of the company name rather than a random draw, so
// the same document always yields the same entries.
func (e *Extractor) Extract(text string) []types.ExperienceEntry {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	currentYear := now().Year()

	matches := companyPattern.FindAllStringSubmatch(text, maxEntries)

	entries := make([]types.ExperienceEntry, 0, len(matches))
	for i, match := range matches {
		company := strings.TrimSpace(match[1])
		seed := companySeed(company)

		endYear := currentYear - i
		duration := 1 + int(seed%4) // 1..4 years
		startYear := endYear - duration

		entries = append(entries, types.ExperienceEntry{
			Title:         titles[int(seed/4)%len(titles)],
			Company:       company,
			Description:   fmt.Sprintf("Worked on various projects at %s", company),
			StartDate:     fmt.Sprintf("%d-01-01", startYear),
			EndDate:       fmt.Sprintf("%d-12-31", endYear),
			DurationYears: duration,
		})
	}

	return entries
}

// companySeed hashes a company name into a stable seed for synthesis.
func companySeed(company string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(company))
	return h.Sum32()
}
