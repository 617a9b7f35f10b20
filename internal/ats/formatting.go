package ats

const formattingMax = 10

// analyzeFormatting scores ATS-friendly structure: core section completeness 4,
// optional sections 2, absence of parser-hostile fields 4.
func (e *Engine) analyzeFormatting(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: formattingMax}

	core := 0
	if len(doc.experience()) > 0 {
		core++
	}
	if len(doc.education()) > 0 {
		core++
	}
	if len(doc.skills()) > 0 {
		core++
	}
	if core == 0 {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Include all core sections: experience, education and skills",
		})
		return result
	}
	result.Score += float64(core) * 4 / 3
	if core < 3 {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Include all core sections: experience, education and skills",
		})
	}

	optional := 0
	for _, key := range []string{"certifications", "projects", "achievements"} {
		if doc.sectionLen(key) > 0 {
			optional++
		}
	}
	if optional >= 1 {
		result.Score += 1
	}
	if optional >= 2 {
		result.Score += 1
	}

	warnings := 0
	if hasPhotoField(doc.personalInfo()) {
		warnings++
		result.Issues = append(result.Issues, Issue{
			Type:       "ats_unfriendly",
			Severity:   SeverityMedium,
			Message:    "Resume includes a photo",
			Suggestion: "Remove the photo; ATS parsers and many recruiters skip resumes with images",
		})
	}
	penalty := 4 - warnings
	if penalty < 0 {
		penalty = 0
	}
	result.Score += float64(penalty)

	return result
}

func hasPhotoField(info map[string]any) bool {
	for _, key := range photoAliases {
		switch v := info[key].(type) {
		case string:
			if v != "" {
				return true
			}
		case bool:
			if v {
				return true
			}
		case map[string]any:
			if len(v) > 0 {
				return true
			}
		}
	}
	return false
}
