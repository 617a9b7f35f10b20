package ats

import "strings"

const skillsMax = 15

// analyzeSkills scores the skills list: presence 4, count band 4, hard/soft
// balance 4, category metadata 3.
func (e *Engine) analyzeSkills(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: skillsMax}
	names := doc.skillNames()

	if len(names) == 0 {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_section",
			Severity:   SeverityHigh,
			Message:    "Skills section is missing",
			Suggestion: "Add a skills section listing your technical and soft skills",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Add a skills section",
			Impact:   "high",
		})
		return result
	}

	result.Score += 4

	switch {
	case len(names) >= 15:
		result.Score += 4
	case len(names) >= 10:
		result.Score += 3
	case len(names) >= 5:
		result.Score += 2
	default:
		result.Score += 1
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "List at least 10 relevant skills",
		})
	}

	hard := 0
	soft := 0
	for _, name := range names {
		lower := strings.ToLower(name)
		if e.lex.IsIndustryTerm(lower) {
			hard++
		}
		if e.lex.IsSoftSkill(lower) {
			soft++
		}
	}
	switch {
	case hard >= 5 && soft >= 2:
		result.Score += 4
	case hard >= 3 || soft >= 1:
		result.Score += 2
	default:
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Mix technical skills with soft skills like leadership or communication",
		})
	}

	categorized := false
	for _, raw := range doc.skills() {
		if entry := asMap(raw); entry != nil {
			if firstString(entry, "category", "group", "type") != "" {
				categorized = true
				break
			}
		}
	}
	if categorized {
		result.Score += 3
	} else if len(names) >= 10 {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Group your skills into categories (e.g. Languages, Tools, Soft Skills)",
		})
	}

	result.Details = map[string]any{
		"hardSkills": hard,
		"softSkills": soft,
	}
	return result
}
