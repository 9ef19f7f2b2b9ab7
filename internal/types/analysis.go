// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillScores maps a matched skill keyword to its rating in [0,100].
// When produced by the job matcher the value is the skill's importance
// to the job rather than the candidate's rating.
type SkillScores map[string]float64

// ExperienceEntry represents a single synthesized work-history record.
// Entries are fabricated from company-name hits in the document text;
// the dates are plausible, not extracted.
type ExperienceEntry struct {
	Title         string `json:"title"`
	Company       string `json:"company"`
	Description   string `json:"description"`
	StartDate     string `json:"start_date"` // YYYY-MM-DD
	EndDate       string `json:"end_date"`   // YYYY-MM-DD
	DurationYears int    `json:"duration_years"`
}

// AnalysisResult is the aggregate record produced by one analysis run.
// It is immutable after construction except for the optional job-matching
// update, which replaces RelevanceScore, sets MissingSkills, and appends
// to Recommendations.
type AnalysisResult struct {
	ID              uuid.UUID         `json:"id"`
	CreatedAt       time.Time         `json:"created_at"`
	Skills          SkillScores       `json:"skills"`
	Experience      []ExperienceEntry `json:"experience"`
	Profession      string            `json:"profession"`
	ExperienceLevel ExperienceLevel   `json:"experience_level"`
	RelevanceScore  float64           `json:"relevance_score"`
	Recommendations []string          `json:"recommendations"`

	// MissingSkills is nil unless the result has been matched against a
	// job description. Values are importance ratings.
	MissingSkills SkillScores `json:"missing_skills,omitempty"`
}

// TotalExperienceYears sums DurationYears across all experience entries.
func (r *AnalysisResult) TotalExperienceYears() int {
	total := 0
	for _, entry := range r.Experience {
		total += entry.DurationYears
	}
	return total
}
