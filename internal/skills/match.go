// Package skills provides keyword-based skill matching against the catalog.
package skills

import (
	"strings"

	"github.com/jonathan/cv-analyzer/internal/catalog"
	"github.com/jonathan/cv-analyzer/internal/types"
)

const (
	// Candidate ratings span [50,100]: one occurrence rates 50 and each
	// additional occurrence adds ratingStep, capped at 100.
	candidateBase = 40.0
	// Job importance spans [60,100] on the same shape.
	importanceBase = 52.0

	ratingStep     = 10.0
	importanceStep = 8.0
	maxScore       = 100.0
)

// Match scans the text for every catalog keyword and rates each hit.
// Matching is literal-substring, not word-boundary: a keyword contained in
// a longer unrelated word still counts. The rating is frequency-weighted
// and deterministic, so identical input always produces identical output.
// Absence of any match returns an empty, non-nil map.
func Match(text string, cat *catalog.Catalog) types.SkillScores {
	return match(text, cat, candidateBase, ratingStep)
}

// MatchImportance rates catalog keywords found in a job-description text on
// the importance scale [60,100].
func MatchImportance(text string, cat *catalog.Catalog) types.SkillScores {
	return match(text, cat, importanceBase, importanceStep)
}

func match(text string, cat *catalog.Catalog, base, step float64) types.SkillScores {
	lowered := strings.ToLower(text)
	scores := make(types.SkillScores)

	for _, category := range cat.Categories {
		for _, keyword := range category.Keywords {
			count := strings.Count(lowered, keyword)
			if count == 0 {
				continue
			}
			score := base + step*float64(count)
			if score > maxScore {
				score = maxScore
			}
			scores[keyword] = score
		}
	}

	return scores
}
