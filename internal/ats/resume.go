package ats

import "strings"

// ResumeDocument is a deserialized resume payload. Upstream producers disagree
// on field names, so values are read through ordered alias lookups instead of a
// fixed struct shape.
type ResumeDocument map[string]any

// Alias orders for logical fields. First non-empty key wins.
var (
	titleAliases      = []string{"title", "jobTitle", "position"}
	companyAliases    = []string{"company", "employer", "organization"}
	startDateAliases  = []string{"startDate", "from"}
	endDateAliases    = []string{"endDate", "to"}
	schoolAliases     = []string{"school", "institution", "university"}
	degreeAliases     = []string{"degree", "qualification"}
	fieldAliases      = []string{"field", "major", "concentration"}
	gradDateAliases   = []string{"endDate", "graduationDate", "year", "graduationYear"}
	photoAliases      = []string{"photo", "image", "picture"}
	bulletListAliases = []string{"bulletPoints", "highlights", "achievements"}
)

func (d ResumeDocument) personalInfo() map[string]any {
	return asMap(d["personalInfo"])
}

func (d ResumeDocument) summary() string {
	return firstString(d.personalInfo(), "summary")
}

func (d ResumeDocument) experience() []map[string]any {
	return mapList(d["experience"])
}

func (d ResumeDocument) education() []map[string]any {
	return mapList(d["education"])
}

func (d ResumeDocument) skills() []any {
	return anyList(d["skills"])
}

func (d ResumeDocument) sectionLen(key string) int {
	return len(anyList(d[key]))
}

// skillNames resolves each skill entry to its display name. Entries may be bare
// strings or objects with a name field.
func (d ResumeDocument) skillNames() []string {
	var out []string
	for _, raw := range d.skills() {
		switch v := raw.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				out = append(out, trimmed)
			}
		case map[string]any:
			if name := firstString(v, "name", "skill", "label"); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// entryBullets resolves the bullet list for one experience entry. A bare
// description string counts as a single bullet when no list is present.
func entryBullets(entry map[string]any) []string {
	for _, key := range bulletListAliases {
		if bullets := stringList(entry[key]); len(bullets) > 0 {
			return bullets
		}
	}
	if desc := firstString(entry, "description"); desc != "" {
		return []string{desc}
	}
	return nil
}

// allBullets flattens every experience bullet in document order.
func (d ResumeDocument) allBullets() []string {
	var out []string
	for _, entry := range d.experience() {
		out = append(out, entryBullets(entry)...)
	}
	return out
}

// searchText concatenates the resume content keyword matching scans:
// skill names, summary, experience titles and bullets, and education
// degree/field. Lowercased once here so matchers stay allocation-free.
func (d ResumeDocument) searchText() string {
	var parts []string
	parts = append(parts, d.skillNames()...)
	if summary := d.summary(); summary != "" {
		parts = append(parts, summary)
	}
	for _, entry := range d.experience() {
		if title := firstString(entry, titleAliases...); title != "" {
			parts = append(parts, title)
		}
		parts = append(parts, entryBullets(entry)...)
	}
	for _, entry := range d.education() {
		if degree := firstString(entry, degreeAliases...); degree != "" {
			parts = append(parts, degree)
		}
		if field := firstString(entry, fieldAliases...); field != "" {
			parts = append(parts, field)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// firstString returns the first non-empty string value among the candidate keys.
func firstString(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if raw, ok := entry[key]; ok {
			if str, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(str); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

// firstBool returns the first boolean value among the candidate keys.
func firstBool(entry map[string]any, keys ...string) bool {
	for _, key := range keys {
		if raw, ok := entry[key]; ok {
			if b, ok := raw.(bool); ok {
				return b
			}
		}
	}
	return false
}

func asMap(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

func anyList(value any) []any {
	if list, ok := value.([]any); ok {
		return list
	}
	return nil
}

func mapList(value any) []map[string]any {
	var out []map[string]any
	for _, item := range anyList(value) {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func stringList(value any) []string {
	var out []string
	for _, item := range anyList(value) {
		if str, ok := item.(string); ok {
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
