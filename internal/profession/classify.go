// Package profession classifies text against the profession keyword table.
package profession

import (
	"strings"

	"github.com/jonathan/cv-analyzer/internal/catalog"
)

// NotDetermined is returned when the text carries no classifier signal.
const NotDetermined = "Not determined"

// Classify scores each profession as the sum of raw substring occurrence
// counts of its keywords in the lower-cased text and returns the arg-max.
// Ties break first-seen-wins in catalog table order. If no keyword occurs
// at all (including empty text), the result is NotDetermined.
func Classify(text string, cat *catalog.Catalog) string {
	lowered := strings.ToLower(text)

	best := NotDetermined
	bestScore := 0
	for _, prof := range cat.Professions {
		score := 0
		for _, keyword := range prof.Keywords {
			score += strings.Count(lowered, keyword)
		}
		if score > bestScore {
			best = prof.Name
			bestScore = score
		}
	}

	return best
}
