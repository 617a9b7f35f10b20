package ats

const educationMax = 15

// analyzeEducation scores the education section: presence 6, complete school /
// degree / graduation-date metadata 8, field of study 1.
func (e *Engine) analyzeEducation(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: educationMax}
	entries := doc.education()

	if len(entries) == 0 {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_section",
			Severity:   SeverityMedium,
			Message:    "Education section is missing",
			Suggestion: "Add your educational background including degrees and institutions",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Add your education details",
		})
		return result
	}

	result.Score += 6

	allHaveSchool := true
	allHaveDegree := true
	allHaveDate := true
	anyHasField := false
	for _, entry := range entries {
		if firstString(entry, schoolAliases...) == "" {
			allHaveSchool = false
		}
		if firstString(entry, degreeAliases...) == "" {
			allHaveDegree = false
		}
		if firstString(entry, gradDateAliases...) == "" {
			allHaveDate = false
		}
		if firstString(entry, fieldAliases...) != "" {
			anyHasField = true
		}
	}

	if allHaveSchool {
		result.Score += 3
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Name the school or institution on every education entry",
		})
	}
	if allHaveDegree {
		result.Score += 3
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "State the degree earned on every education entry",
		})
	}
	if allHaveDate {
		result.Score += 2
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Add graduation dates to your education entries",
		})
	}
	if anyHasField {
		result.Score += 1
	}

	return result
}
