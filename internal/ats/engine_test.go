package ats

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestEngine() *Engine {
	e := New(Options{})
	e.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return e
}

func sampleResume() ResumeDocument {
	return ResumeDocument{
		"personalInfo": map[string]any{
			"fullName": "Jane Doe",
			"email":    "jane.doe@gmail.com",
			"phone":    "+1-555-123-4567",
			"location": "Austin, TX",
			"linkedin": "linkedin.com/in/janedoe",
			"summary":  "Software engineer with 8+ years of experience. Led teams that developed scalable React and Go microservices, delivered measurable revenue growth across three product lines.",
		},
		"experience": []any{
			map[string]any{
				"title":     "Senior Software Engineer",
				"company":   "Acme Corp",
				"startDate": "2021-02",
				"endDate":   "Present",
				"bulletPoints": []any{
					"Led a team of 6 engineers building payment APIs",
					"Increased checkout conversion by 25% through A/B testing",
					"Reduced deployment time by 40% with CI/CD automation",
				},
			},
			map[string]any{
				"title":     "Software Engineer",
				"company":   "Globex",
				"startDate": "2018-05",
				"endDate":   "2021-01",
				"bulletPoints": []any{
					"Built a data pipeline processing 2 million events daily",
					"Developed React dashboards used by 300+ customers",
					"Automated reporting, saving 10 hours per week",
				},
			},
		},
		"education": []any{
			map[string]any{
				"school":  "State University",
				"degree":  "B.S.",
				"field":   "Computer Science",
				"endDate": "2018",
			},
		},
		"skills": []any{
			"Go", "Python", "JavaScript", "React", "PostgreSQL", "Docker",
			"Kubernetes", "AWS", "Leadership", "Communication", "SQL", "Git",
		},
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	report := newTestEngine().Analyze(ResumeDocument{}, "")

	if report.Category != CategoryPoor {
		t.Fatalf("category = %q, want %q", report.Category, CategoryPoor)
	}
	if report.Score != 0 {
		t.Fatalf("score = %d, want 0", report.Score)
	}
	for _, name := range []string{SectionContact, SectionSummary, SectionExperience, SectionEducation, SectionSkills} {
		if got := report.Format.Metrics[name]; got != 0 {
			t.Fatalf("metrics[%s] = %d, want 0", name, got)
		}
	}
	if report.Keywords != nil {
		t.Fatalf("keywords = %+v, want nil", report.Keywords)
	}
}

func TestAnalyzeContactOnlyResume(t *testing.T) {
	doc := ResumeDocument{
		"personalInfo": map[string]any{
			"fullName": "John Smith",
			"email":    "john.smith@gmail.com",
			"phone":    "+1-555-123-4567",
			"location": "NY",
			"linkedin": "linkedin.com/in/john",
		},
	}
	e := newTestEngine()

	contact := e.analyzeContact(doc)
	if contact.Score != contactMax {
		t.Fatalf("contact score = %v, want %v", contact.Score, contactMax)
	}

	report := e.Analyze(doc, "")
	if report.Format.Score != 15 {
		t.Fatalf("format score = %d, want 15", report.Format.Score)
	}
	if report.Score != 15 {
		t.Fatalf("score = %d, want 15", report.Score)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	docs := []ResumeDocument{
		{},
		sampleResume(),
		{"experience": []any{map[string]any{"title": "Dev"}}},
		{"skills": []any{"go"}},
	}
	e := newTestEngine()
	for i, doc := range docs {
		report := e.Analyze(doc, "")
		if report.Score < 0 || report.Score > 100 {
			t.Fatalf("doc %d: score %d out of range", i, report.Score)
		}
		switch report.Category {
		case CategoryExcellent, CategoryGood, CategoryFair, CategoryNeedsImprovement, CategoryPoor:
		default:
			t.Fatalf("doc %d: unknown category %q", i, report.Category)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	e := newTestEngine()
	jd := "Looking for a senior engineer with experience with Go, React and PostgreSQL. Leadership required."

	first := e.Analyze(sampleResume(), jd)
	second := e.Analyze(sampleResume(), jd)

	first.AnalyzedAt = time.Time{}
	second.AnalyzedAt = time.Time{}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ across identical runs:\n%+v\n%+v", first, second)
	}
}

func TestSectionWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, name := range sectionOrder {
		total += sectionWeights[name]
	}
	if total < 0.9999 || total > 1.0001 {
		t.Fatalf("weights sum to %v, want 1.0", total)
	}
}

func TestShortJobDescriptionSkipsKeywords(t *testing.T) {
	jd := strings.Repeat("x", 40)
	report := newTestEngine().Analyze(sampleResume(), jd)

	if report.Keywords != nil {
		t.Fatalf("keywords = %+v, want nil for a 40-char job description", report.Keywords)
	}
	if report.Score != report.Format.Score {
		t.Fatalf("score = %d, want format score %d", report.Score, report.Format.Score)
	}
}

func TestKeywordBlendAppliesSeventyThirty(t *testing.T) {
	jd := "We need deep experience with terraform and ansible plus strong stakeholder management and vendor management. Snowflake preferred."
	e := newTestEngine()
	report := e.Analyze(sampleResume(), jd)

	if report.Keywords == nil {
		t.Fatal("keywords missing for long job description")
	}
	want := overallScore(report.Format.Score, report.Keywords)
	if report.Score != want {
		t.Fatalf("score = %d, want blended %d", report.Score, want)
	}
}

func TestMatchPercentageMonotonicUnderAddedSkill(t *testing.T) {
	jd := "Requirements: experience with Kubernetes, Terraform, GraphQL; strong communication and leadership skills. 5+ years experience."
	e := newTestEngine()

	base := sampleResume()
	before := e.Analyze(base, jd)

	enriched := sampleResume()
	enriched["skills"] = append(anyList(enriched["skills"]), "Terraform")
	after := e.Analyze(enriched, jd)

	if before.Keywords == nil || after.Keywords == nil {
		t.Fatal("keyword analysis did not run")
	}
	if after.Keywords.MatchPercentage < before.Keywords.MatchPercentage {
		t.Fatalf("match dropped from %d to %d after adding a skill",
			before.Keywords.MatchPercentage, after.Keywords.MatchPercentage)
	}
}

func TestSectionFlags(t *testing.T) {
	doc := sampleResume()
	doc["certifications"] = []any{map[string]any{"name": "CKA"}}
	report := newTestEngine().Analyze(doc, "")

	flags := report.Format.Sections
	if !flags.HasSummary || !flags.HasExperience || !flags.HasEducation || !flags.HasSkills || !flags.HasContact {
		t.Fatalf("core flags wrong: %+v", flags)
	}
	if !flags.HasCertifications || flags.HasProjects || flags.HasAchievements {
		t.Fatalf("optional flags wrong: %+v", flags)
	}
}

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, CategoryExcellent},
		{90, CategoryExcellent},
		{89, CategoryGood},
		{75, CategoryGood},
		{74, CategoryFair},
		{60, CategoryFair},
		{59, CategoryNeedsImprovement},
		{40, CategoryNeedsImprovement},
		{39, CategoryPoor},
		{0, CategoryPoor},
	}
	for _, tc := range cases {
		if got := CategoryFor(tc.score); got != tc.want {
			t.Fatalf("CategoryFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSubScoresNeverExceedMax(t *testing.T) {
	docs := []ResumeDocument{{}, sampleResume()}
	e := newTestEngine()
	for i, doc := range docs {
		results := map[string]SectionResult{
			SectionContact:        e.analyzeContact(doc),
			SectionSummary:        e.analyzeSummary(doc),
			SectionExperience:     e.analyzeExperience(doc),
			SectionEducation:      e.analyzeEducation(doc),
			SectionSkills:         e.analyzeSkills(doc),
			SectionFormatting:     e.analyzeFormatting(doc),
			SectionActionVerbs:    e.analyzeActionVerbs(doc),
			SectionQuantification: e.analyzeQuantification(doc),
		}
		for name, result := range results {
			if result.Score < 0 || result.Score > result.Max {
				t.Fatalf("doc %d: %s score %v outside [0, %v]", i, name, result.Score, result.Max)
			}
		}
	}
}
