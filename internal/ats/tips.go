package ats

import "sort"

// maxTips caps the ranked tip list.
const maxTips = 12

var priorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

var tipTitles = map[string]string{
	PriorityHigh:   "Critical",
	PriorityMedium: "Important",
	PriorityLow:    "Suggested",
}

// rankTips merges all suggestions, stable-sorts by priority and maps them to
// display-ready tips, capped at maxTips.
func rankTips(results map[string]SectionResult) []Tip {
	var suggestions []Suggestion
	for _, name := range sectionOrder {
		suggestions = append(suggestions, results[name].Suggestions...)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return rankOf(suggestions[i].Priority) < rankOf(suggestions[j].Priority)
	})
	if len(suggestions) > maxTips {
		suggestions = suggestions[:maxTips]
	}

	tips := make([]Tip, 0, len(suggestions))
	for _, s := range suggestions {
		title, ok := tipTitles[s.Priority]
		if !ok {
			title = "Tip"
		}
		impact := s.Impact
		if impact == "" {
			impact = "medium"
		}
		tips = append(tips, Tip{
			Priority:    s.Priority,
			Title:       title,
			Description: s.Message,
			Impact:      impact,
		})
	}
	return tips
}

func rankOf(priority string) int {
	if rank, ok := priorityRank[priority]; ok {
		return rank
	}
	return len(priorityRank)
}

var strengthPhrases = []struct {
	section string
	phrase  string
}{
	{SectionContact, "Complete, professional contact information"},
	{SectionSummary, "Strong professional summary"},
	{SectionExperience, "Well-structured work experience"},
	{SectionActionVerbs, "Bullet points lead with strong action verbs"},
	{SectionQuantification, "Achievements backed by measurable results"},
	{SectionSkills, "Comprehensive, balanced skills section"},
}

// deriveStrengths emits a fixed phrase for every highlighted section scoring
// at least 80 percent of its maximum.
func deriveStrengths(results map[string]SectionResult) []string {
	var strengths []string
	for _, entry := range strengthPhrases {
		if sectionPercent(results[entry.section]) >= 80 {
			strengths = append(strengths, entry.phrase)
		}
	}
	return strengths
}
