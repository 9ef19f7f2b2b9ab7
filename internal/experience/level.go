package experience

import "github.com/jonathan/cv-analyzer/internal/types"

// EstimateLevel maps total synthesized experience years to a seniority band
// via fixed thresholds. Only the first five bands are reachable; Director,
// VP and C-Level exist in the vocabulary but no total maps to them.
func EstimateLevel(totalYears int) types.ExperienceLevel {
	switch {
	case totalYears < 2:
		return types.LevelJunior
	case totalYears < 5:
		return types.LevelMid
	case totalYears < 8:
		return types.LevelSenior
	case totalYears < 12:
		return types.LevelLead
	default:
		return types.LevelManager
	}
}

// TotalYears sums the duration of the given entries.
func TotalYears(entries []types.ExperienceEntry) int {
	total := 0
	for _, entry := range entries {
		total += entry.DurationYears
	}
	return total
}
