package ats

import (
	"regexp"
	"strings"
)

const summaryMax = 15

var yearsOfExperiencePattern = regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|yrs?)(?:\s*of)?(?:\s*experience)?`)

var firstPersonMarkers = []string{" i ", " my ", " me ", " i'm ", " i've "}

// analyzeSummary scores the professional summary: length band 5, years of
// experience 3, action verbs 3, industry keywords 2, third-person voice 2.
func (e *Engine) analyzeSummary(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: summaryMax}
	summary := doc.summary()

	if len(summary) < 30 {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_section",
			Severity:   SeverityCritical,
			Message:    "Professional summary is missing or too short",
			Suggestion: "Add a 2-3 sentence summary highlighting your key qualifications",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Write a professional summary of 30-75 words",
			Impact:   "high",
		})
		return result
	}

	words := len(strings.Fields(summary))
	switch {
	case words >= 30 && words <= 75:
		result.Score += 5
	case words >= 20 && words <= 100:
		result.Score += 3
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Aim for a summary of 30-75 words for the best ATS parsing",
		})
	default:
		result.Score += 1
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Rewrite your summary to 30-75 words",
		})
	}

	lower := strings.ToLower(summary)

	if yearsOfExperiencePattern.MatchString(summary) {
		result.Score += 3
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Mention your years of experience (e.g. \"8+ years of experience\")",
		})
	}

	verbHits := 0
	for _, verb := range e.lex.ActionVerbs() {
		if strings.Contains(lower, verb) {
			verbHits++
		}
	}
	switch {
	case verbHits >= 2:
		result.Score += 3
	case verbHits == 1:
		result.Score += 1
	default:
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Use action verbs in your summary (led, developed, achieved)",
		})
	}

	if e.lex.IsIndustryTerm(lower) {
		result.Score += 2
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Include keywords from your industry in the summary",
		})
	}

	padded := " " + lower + " "
	firstPerson := false
	for _, marker := range firstPersonMarkers {
		if strings.Contains(padded, marker) {
			firstPerson = true
			break
		}
	}
	if !firstPerson {
		result.Score += 2
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Avoid first-person pronouns; write the summary in third person",
		})
	}

	return result
}
