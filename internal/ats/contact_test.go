package ats

import "testing"

func TestAnalyzeContactUnprofessionalEmail(t *testing.T) {
	doc := ResumeDocument{
		"personalInfo": map[string]any{
			"fullName": "John Smith",
			"email":    "sexystud69@yahoo.com",
		},
	}
	result := newTestEngine().analyzeContact(doc)

	// Base +3 for email presence, no +2 professionalism bonus.
	if result.Score != 8 {
		t.Fatalf("score = %v, want 8 (name 5 + email 3)", result.Score)
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Severity == SeverityHigh && issue.Type == "weak_content" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no high-severity issue for unprofessional email: %+v", result.Issues)
	}
}

func TestAnalyzeContactMissingFields(t *testing.T) {
	result := newTestEngine().analyzeContact(ResumeDocument{})

	if result.Score != 0 {
		t.Fatalf("score = %v, want 0", result.Score)
	}
	critical := 0
	high := 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityCritical:
			critical++
		case SeverityHigh:
			high++
		}
	}
	// Missing name and email are critical, missing phone is high.
	if critical != 2 || high != 1 {
		t.Fatalf("critical = %d, high = %d, want 2 and 1: %+v", critical, high, result.Issues)
	}
}

func TestAnalyzeContactShortPhoneFlagged(t *testing.T) {
	doc := ResumeDocument{
		"personalInfo": map[string]any{"phone": "555-1234"},
	}
	result := newTestEngine().analyzeContact(doc)

	flagged := false
	for _, issue := range result.Issues {
		if issue.Severity == SeverityMedium {
			flagged = true
		}
	}
	if !flagged {
		t.Fatalf("short phone number not flagged: %+v", result.Issues)
	}
}

func TestAnalyzeContactLinkedinWithoutDomain(t *testing.T) {
	doc := ResumeDocument{
		"personalInfo": map[string]any{"linkedin": "my-profile"},
	}
	result := newTestEngine().analyzeContact(doc)

	flagged := false
	for _, issue := range result.Issues {
		if issue.Severity == SeverityLow {
			flagged = true
		}
	}
	if !flagged {
		t.Fatalf("non-linkedin.com value not flagged: %+v", result.Issues)
	}
}

func TestIsProperlyCapitalized(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"John Smith", true},
		{"john smith", false},
		{"JOHN SMITH", false},
		{"John O'Brien", true},
		{"", false},
	}
	for _, tc := range cases {
		if got := isProperlyCapitalized(tc.name); got != tc.want {
			t.Fatalf("isProperlyCapitalized(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
