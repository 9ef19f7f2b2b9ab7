// Package jobmatch scores a candidate's analysis result against a job
// description and flags skill gaps.
package jobmatch

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/catalog"
	"github.com/jonathan/cv-analyzer/internal/skills"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// fallbackScore is the match score when the job description yields no
// required skills at all.
const fallbackScore = 70.0

// maxSkillsInMessage caps how many missing skills the advisory names.
const maxSkillsInMessage = 3

// Fixed job-specific tips appended after any skill-gap advisory.
const (
	msgCustomize  = "Customize your CV to better match the job requirements."
	msgCompetency = "Highlight relevant achievements that demonstrate required competencies."
)

// Result holds the updates a job match applies to an AnalysisResult.
type Result struct {
	RelevanceScore  float64
	MissingSkills   types.SkillScores
	Recommendations []string
}

// Match re-runs skill extraction against the job description to obtain
// required skills with importance ratings, then compares them to the
// candidate's skill map. A required skill is missing if the candidate lacks
// it, or has it with a rating strictly below the job's importance. The match
// score is the fraction of required skills present, as a percentage.
//
// The returned recommendations are the candidate's original list plus up to
// one skill-gap advisory (naming at most the first three missing skills in
// catalog order) plus the two fixed job tips.
func Match(result *types.AnalysisResult, jobDescription string, cat *catalog.Catalog) Result {
	required := skills.MatchImportance(jobDescription, cat)

	missing := make(types.SkillScores)
	matches := 0
	for skill, importance := range required {
		rating, present := result.Skills[skill]
		if present {
			matches++
			if rating < importance {
				missing[skill] = importance
			}
		} else {
			missing[skill] = importance
		}
	}

	score := fallbackScore
	if len(required) > 0 {
		score = float64(matches) / float64(len(required)) * 100
	}

	recommendations := append([]string{}, result.Recommendations...)
	if len(missing) > 0 {
		recommendations = append(recommendations, gapAdvisory(missing, cat))
	}
	recommendations = append(recommendations, msgCustomize, msgCompetency)

	return Result{
		RelevanceScore:  score,
		MissingSkills:   missing,
		Recommendations: recommendations,
	}
}

// Apply writes the match outcome onto the result record.
func (r Result) Apply(result *types.AnalysisResult) {
	result.RelevanceScore = r.RelevanceScore
	result.MissingSkills = r.MissingSkills
	result.Recommendations = r.Recommendations
}

// gapAdvisory names the first missing skills in catalog keyword order, so
// the message is stable across runs.
func gapAdvisory(missing types.SkillScores, cat *catalog.Catalog) string {
	named := make([]string, 0, maxSkillsInMessage)
	for _, keyword := range cat.Keywords() {
		if _, ok := missing[keyword]; !ok {
			continue
		}
		named = append(named, keyword)
		if len(named) == maxSkillsInMessage {
			break
		}
	}
	return fmt.Sprintf("Highlight or develop skills in: %s", strings.Join(named, ", "))
}
