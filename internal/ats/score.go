package ats

import "math"

// Section names in report order.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionFormatting     = "formatting"
	SectionActionVerbs    = "actionVerbs"
	SectionQuantification = "quantification"
)

var sectionOrder = []string{
	SectionContact, SectionSummary, SectionExperience, SectionEducation,
	SectionSkills, SectionFormatting, SectionActionVerbs, SectionQuantification,
}

// sectionWeights sum to exactly 1.0.
var sectionWeights = map[string]float64{
	SectionContact:        0.15,
	SectionSummary:        0.10,
	SectionExperience:     0.25,
	SectionEducation:      0.10,
	SectionSkills:         0.15,
	SectionFormatting:     0.05,
	SectionActionVerbs:    0.10,
	SectionQuantification: 0.10,
}

// sectionPercent converts one sub-score to its 0-100 attainment.
func sectionPercent(result SectionResult) float64 {
	if result.Max <= 0 {
		return 0
	}
	return result.Score / result.Max * 100
}

// formatScore aggregates the weighted sub-scores into a 0-100 format score.
func formatScore(results map[string]SectionResult) int {
	total := 0.0
	for _, name := range sectionOrder {
		total += sectionPercent(results[name]) * sectionWeights[name]
	}
	return int(math.Round(total))
}

// overallScore blends the format score with the keyword match when keyword
// analysis ran.
func overallScore(format int, keywords *KeywordMatch) int {
	if keywords == nil {
		return format
	}
	return int(math.Round(float64(format)*0.7 + float64(keywords.MatchPercentage)*0.3))
}
