// Package recommend emits advisory messages from coverage thresholds.
package recommend

import "github.com/jonathan/cv-analyzer/internal/types"

// Thresholds below which coverage advice is added.
const (
	minSkills     = 5
	minExperience = 3
)

// Fixed advisory strings. Order of emission is part of the contract and is
// relied on by golden-output tests.
const (
	msgBroadenSkills    = "Consider adding more skills to your CV to showcase your expertise."
	msgExperienceDetail = "Add more details about your work experience, including achievements and responsibilities."
	msgQuantify         = "Quantify your achievements with metrics and results where possible."
	msgTailor           = "Tailor your CV for each specific job application."
)

// Generate returns the recommendation list for the given coverage: coverage
// advice first (skills, then experience), then the two generic tips.
func Generate(skills types.SkillScores, experience []types.ExperienceEntry) []string {
	var recommendations []string

	if len(skills) < minSkills {
		recommendations = append(recommendations, msgBroadenSkills)
	}
	if len(experience) < minExperience {
		recommendations = append(recommendations, msgExperienceDetail)
	}

	recommendations = append(recommendations, msgQuantify, msgTailor)

	return recommendations
}
