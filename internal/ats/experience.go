package ats

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const experienceMax = 25

var endYearPattern = regexp.MustCompile(`(\d{4})`)

// analyzeExperience scores the work history: presence and depth 8, complete
// entry metadata 6, bullet coverage 5, recency 3.
func (e *Engine) analyzeExperience(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: experienceMax}
	entries := doc.experience()

	if len(entries) == 0 {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_section",
			Severity:   SeverityCritical,
			Message:    "Work experience section is missing",
			Suggestion: "Add your work experience with job titles, companies and accomplishments",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Add work experience to your resume",
			Impact:   "high",
		})
		return result
	}

	result.Score += 5
	if len(entries) >= 2 {
		result.Score += 2
	}
	if len(entries) >= 3 {
		result.Score += 1
	}

	allHaveTitle := true
	allHaveCompany := true
	allHaveDate := true
	entriesWithBullets := 0
	totalBullets := 0
	recent := false
	currentYear := e.now().Year()

	for _, entry := range entries {
		if firstString(entry, titleAliases...) == "" {
			allHaveTitle = false
		}
		if firstString(entry, companyAliases...) == "" {
			allHaveCompany = false
		}
		if firstString(entry, startDateAliases...) == "" {
			allHaveDate = false
		}
		if bullets := entryBullets(entry); len(bullets) > 0 {
			entriesWithBullets++
			totalBullets += len(bullets)
		}
		if isRecentEntry(entry, currentYear) {
			recent = true
		}
	}

	if allHaveTitle {
		result.Score += 2
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Add a job title to every experience entry",
		})
	}
	if allHaveCompany {
		result.Score += 2
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Add the company name to every experience entry",
		})
	}
	if allHaveDate {
		result.Score += 2
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Add start dates to every experience entry",
		})
	}

	switch {
	case entriesWithBullets == len(entries) && totalBullets >= len(entries)*3:
		result.Score += 5
	case totalBullets > 0:
		result.Score += 2
		if totalBullets < len(entries)*3 {
			result.Suggestions = append(result.Suggestions, Suggestion{
				Priority: PriorityMedium,
				Message:  "Aim for 3-5 bullet points per role",
			})
		}
		if entriesWithBullets < len(entries) {
			result.Issues = append(result.Issues, Issue{
				Type:       "weak_content",
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("%d of %d experience entries lack bullet points", len(entries)-entriesWithBullets, len(entries)),
				Suggestion: "Describe every role with bullet points, not just the most recent",
			})
		}
	default:
		result.Issues = append(result.Issues, Issue{
			Type:       "weak_content",
			Severity:   SeverityCritical,
			Message:    "Experience entries have no bullet points",
			Suggestion: "Add 3-5 bullet points per role highlighting your achievements",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Add bullet points describing your achievements",
			Impact:   "high",
		})
	}

	if recent {
		result.Score += 3
	}

	return result
}

// isRecentEntry reports whether an entry is current or ended within the last
// two calendar years.
func isRecentEntry(entry map[string]any, currentYear int) bool {
	if firstBool(entry, "current", "isCurrent") {
		return true
	}
	end := firstString(entry, endDateAliases...)
	if end == "" {
		return false
	}
	lower := strings.ToLower(end)
	if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
		return true
	}
	if match := endYearPattern.FindString(end); match != "" {
		if year, err := strconv.Atoi(match); err == nil {
			return year >= currentYear-2
		}
	}
	return false
}
