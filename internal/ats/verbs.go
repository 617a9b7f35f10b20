package ats

import (
	"fmt"
	"math"
	"strings"
)

const actionVerbsMax = 15

// analyzeActionVerbs scores how bullets open: strong-verb ratio 10, weak-phrase
// count 5. A bullet can count as both strong and weak; the checks are
// independent.
func (e *Engine) analyzeActionVerbs(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: actionVerbsMax}
	bullets := doc.allBullets()

	if len(bullets) == 0 {
		return result
	}

	strongCount := 0
	weakCount := 0
	strongSeen := map[string]bool{}
	weakSeen := map[string]bool{}
	var strongVerbs []string
	var weakPhrases []string

	for _, bullet := range bullets {
		lower := strings.ToLower(strings.TrimSpace(bullet))
		firstWord := lower
		if idx := strings.IndexAny(lower, " \t"); idx >= 0 {
			firstWord = lower[:idx]
		}
		firstWord = strings.Trim(firstWord, ".,:;!")

		for _, verb := range e.lex.ActionVerbs() {
			if firstWord == verb || strings.HasPrefix(lower, verb+" ") {
				strongCount++
				if !strongSeen[verb] {
					strongSeen[verb] = true
					strongVerbs = append(strongVerbs, verb)
				}
				break
			}
		}
		for _, phrase := range e.lex.WeakVerbs() {
			if strings.Contains(lower, phrase) {
				weakCount++
				if !weakSeen[phrase] {
					weakSeen[phrase] = true
					weakPhrases = append(weakPhrases, phrase)
				}
				break
			}
		}
	}

	verbRatio := float64(strongCount) / float64(len(bullets))
	switch {
	case verbRatio >= 0.8:
		result.Score += 10
	case verbRatio >= 0.6:
		result.Score += 7
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Start more bullet points with strong action verbs",
		})
	case verbRatio >= 0.4:
		result.Score += 4
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Start each bullet point with a strong action verb (led, built, achieved)",
		})
	default:
		result.Score += 2
		result.Issues = append(result.Issues, Issue{
			Type:       "weak_content",
			Severity:   SeverityMedium,
			Message:    "Most bullet points do not start with action verbs",
			Suggestion: "Open every bullet with a strong action verb",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Rewrite bullet points to lead with action verbs",
			Impact:   "high",
		})
	}

	switch {
	case weakCount == 0:
		result.Score += 5
	case weakCount <= 2:
		result.Score += 3
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Replace weak phrasing like %q with specific action verbs", weakPhrases[0]),
		})
	default:
		result.Score += 1
		result.Issues = append(result.Issues, Issue{
			Type:       "weak_content",
			Severity:   SeverityCritical,
			Message:    fmt.Sprintf("%d bullet points use weak phrasing (%s)", weakCount, strings.Join(weakPhrases, ", ")),
			Suggestion: "Replace phrases like \"worked on\" and \"was responsible for\" with what you actually did",
		})
	}

	result.Details = map[string]any{
		"strongVerbs": strongVerbs,
		"weakPhrases": weakPhrases,
		"coverage":    int(math.Round(verbRatio * 100)),
	}
	return result
}
