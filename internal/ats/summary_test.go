package ats

import (
	"strings"
	"testing"
)

func summaryDoc(summary string) ResumeDocument {
	return ResumeDocument{
		"personalInfo": map[string]any{"summary": summary},
	}
}

func TestAnalyzeSummaryTooShort(t *testing.T) {
	result := newTestEngine().analyzeSummary(summaryDoc("Engineer."))

	if result.Score != 0 {
		t.Fatalf("score = %v, want 0", result.Score)
	}
	if len(result.Issues) != 1 || result.Issues[0].Severity != SeverityCritical {
		t.Fatalf("want a single critical issue, got %+v", result.Issues)
	}
}

func TestAnalyzeSummaryFullMarks(t *testing.T) {
	summary := "Results-driven software engineer with 8+ years of experience. " +
		"Led cross-functional teams and developed cloud platforms on AWS, " +
		"delivering measurable improvements in reliability and release velocity " +
		"across three product lines while mentoring junior engineers and partner teams."
	result := newTestEngine().analyzeSummary(summaryDoc(summary))

	if result.Score != summaryMax {
		t.Fatalf("score = %v, want %v", result.Score, summaryMax)
	}
}

func TestAnalyzeSummaryWordBands(t *testing.T) {
	base := "Seasoned engineer with 10+ years of experience who led and developed cloud systems " +
		"for enterprise clients, owning reliability, on-call rotations and capacity planning " +
		"for a large fleet of services across several regions. "
	long := base + strings.Repeat("Additional filler sentences stretch this summary considerably beyond the ideal target length. ", 12)

	short := newTestEngine().analyzeSummary(summaryDoc(base))
	verbose := newTestEngine().analyzeSummary(summaryDoc(long))

	if verbose.Score >= short.Score {
		t.Fatalf("overlong summary scored %v, concise scored %v", verbose.Score, short.Score)
	}
}

func TestAnalyzeSummaryFirstPersonPenalized(t *testing.T) {
	third := "Experienced engineer with 5+ years of experience. Led and developed scalable cloud " +
		"infrastructure for enterprise clients, improving release cadence and observability " +
		"while coordinating incident response across several distributed product teams."
	first := "I am an experienced engineer with 5+ years of experience. I led and developed scalable cloud " +
		"infrastructure for enterprise clients, improving release cadence and observability " +
		"while coordinating incident response across several distributed product teams."

	e := newTestEngine()
	withThird := e.analyzeSummary(summaryDoc(third))
	withFirst := e.analyzeSummary(summaryDoc(first))

	if withFirst.Score >= withThird.Score {
		t.Fatalf("first-person summary scored %v, third-person scored %v", withFirst.Score, withThird.Score)
	}
}
