package ats

import (
	"strings"
	"unicode"
)

const contactMax = 20

// analyzeContact scores the contact header: name 5, email 5, phone 4,
// location 3, linkedin 3.
func (e *Engine) analyzeContact(doc ResumeDocument) SectionResult {
	result := SectionResult{Max: contactMax}
	info := doc.personalInfo()

	if name := firstString(info, "fullName", "name"); name != "" {
		result.Score += 5
		if !isProperlyCapitalized(name) {
			result.Suggestions = append(result.Suggestions, Suggestion{
				Priority: PriorityLow,
				Message:  "Capitalize your name the way it should appear on official documents",
			})
		}
	} else {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_info",
			Severity:   SeverityCritical,
			Message:    "Full name is missing",
			Suggestion: "Add your full name so recruiters can identify you",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Add your full name",
			Impact:   "high",
		})
	}

	if email := firstString(info, "email"); email != "" {
		result.Score += 3
		if e.lex.IsUnprofessionalEmail(email) {
			result.Issues = append(result.Issues, Issue{
				Type:       "weak_content",
				Severity:   SeverityHigh,
				Message:    "Email address looks unprofessional",
				Suggestion: "Use a simple address based on your name, e.g. first.last@provider.com",
			})
			result.Suggestions = append(result.Suggestions, Suggestion{
				Priority: PriorityHigh,
				Message:  "Switch to a professional email address",
				Impact:   "high",
			})
		} else {
			result.Score += 2
		}
	} else {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_info",
			Severity:   SeverityCritical,
			Message:    "Email address is missing",
			Suggestion: "Add a professional email address",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityHigh,
			Message:  "Add your email address",
			Impact:   "high",
		})
	}

	if phone := firstString(info, "phone"); phone != "" {
		result.Score += 4
		if digitCount(phone) < 10 {
			result.Issues = append(result.Issues, Issue{
				Type:       "weak_content",
				Severity:   SeverityMedium,
				Message:    "Phone number looks incomplete",
				Suggestion: "Include your full phone number with area code",
			})
		}
	} else {
		result.Issues = append(result.Issues, Issue{
			Type:       "missing_info",
			Severity:   SeverityHigh,
			Message:    "Phone number is missing",
			Suggestion: "Add your phone number for direct contact",
		})
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityMedium,
			Message:  "Add your phone number",
		})
	}

	if location := firstString(info, "location"); location != "" {
		result.Score += 3
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Add your location (city, state)",
		})
	}

	if linkedin := firstString(info, "linkedin"); linkedin != "" {
		result.Score += 3
		if !strings.Contains(strings.ToLower(linkedin), "linkedin.com") {
			result.Issues = append(result.Issues, Issue{
				Type:       "weak_content",
				Severity:   SeverityLow,
				Message:    "LinkedIn field does not look like a linkedin.com URL",
				Suggestion: "Use the full linkedin.com/in/... profile URL",
			})
		}
	} else {
		result.Suggestions = append(result.Suggestions, Suggestion{
			Priority: PriorityLow,
			Message:  "Add a link to your LinkedIn profile",
		})
	}

	return result
}

// isProperlyCapitalized reports whether each word of the name starts with an
// uppercase letter and is not fully uppercased.
func isProperlyCapitalized(name string) bool {
	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		runes := []rune(word)
		if !unicode.IsLetter(runes[0]) {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		if len(runes) > 1 && strings.ToUpper(word) == word {
			return false
		}
	}
	return true
}

func digitCount(value string) int {
	count := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
