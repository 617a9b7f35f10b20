package ats

import (
	"fmt"
	"math"
	"regexp"
)

const quantificationMax = 15

// quantPatterns are tried in order per bullet; the first hit counts the bullet
// as quantified.
var quantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%`),
	regexp.MustCompile(`(?i)[$€£]\s*\d+(?:[.,]\d+)?\s*[kmb]?\b`),
	regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s*(?:thousand|million|billion)\b`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:users?|customers?|clients?|people|employees|members)\b`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:projects?|products?|features?|releases?|campaigns?)\b`),
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?x\b`),
	regexp.MustCompile(`(?i)top\s*\d+\s*%?`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:hours?|days?|weeks?|months?|years?)\b`),
	regexp.MustCompile(`(?i)\d+\s*(?:to|:)\s*\d+`),
	regexp.MustCompile(`(?i)team\s*of\s*\d+`),
	regexp.MustCompile(`(?i)reduced\b[^.]*?\bby\s*\d+`),
	regexp.MustCompile(`(?i)increased\b[^.]*?\bby\s*\d+`),
	regexp.MustCompile(`(?i)saved\b[^.]*?[$€£]?\d+`),
	regexp.MustCompile(`(?i)grew\b[^.]*?\d+`),
	regexp.MustCompile(`(?i)(?:over|more than|up to)\s*\d+`),
}

// analyzeQuantification scores how many bullets carry measurable outcomes.
func (e *Engine) analyzeQuantification(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: quantificationMax}
	bullets := doc.allBullets()

	if len(bullets) == 0 {
		return result
	}

	quantified := 0
	var examples []string
	for _, bullet := range bullets {
		for _, pattern := range quantPatterns {
			if match := pattern.FindString(bullet); match != "" {
				quantified++
				if len(examples) < 3 {
					examples = append(examples, match)
				}
				break
			}
		}
	}

	quantRatio := float64(quantified) / float64(len(bullets))
	percent := int(math.Round(quantRatio * 100))
	switch {
	case quantRatio >= 0.6:
		result.Score += 15
	case quantRatio >= 0.4:
		result.Score += 10
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Add numbers to more bullet points (revenue, users, time saved)",
		})
	case quantRatio >= 0.2:
		result.Score += 5
		result.Issues = append(result.Issues, Issue{
			Type:       "weak_content",
			Severity:   SeverityMedium,
			Message:    fmt.Sprintf("Only %d%% of bullet points include measurable results", percent),
			Suggestion: "Quantify your achievements with percentages, amounts or counts",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Quantify more of your achievements",
		})
	default:
		result.Score += 2
		result.Issues = append(result.Issues, Issue{
			Type:       "weak_content",
			Severity:   SeverityHigh,
			Message:    "Bullet points rarely include measurable results",
			Suggestion: "Add concrete numbers: \"increased sales by 25%\" beats \"increased sales\"",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Add measurable results to your bullet points",
			Impact:   "high",
		})
	}

	result.Details = map[string]any{
		"quantified": quantified,
		"coverage":   percent,
		"examples":   examples,
	}
	return result
}
