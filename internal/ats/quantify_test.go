package ats

import "testing"

func TestQuantPatternsMatchCommonShapes(t *testing.T) {
	cases := []struct {
		name   string
		bullet string
	}{
		{"percentage", "Increased revenue by 25% through targeted campaigns"},
		{"currency", "Managed a $2M annual budget"},
		{"magnitude word", "Processed 3 million transactions monthly"},
		{"user count", "Supported 500+ users across two regions"},
		{"project count", "Shipped 12 projects in the first year"},
		{"multiplier", "Improved throughput 3x after the rewrite"},
		{"ranking", "Ranked top 5% of the sales organization"},
		{"duration", "Cut onboarding from 6 weeks to 2 weeks"},
		{"ratio", "Improved pass rate from 60 to 95"},
		{"team size", "Led a team of 8 engineers"},
		{"reduced by", "Reduced infrastructure spend by 30 percent"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched := false
			for _, pattern := range quantPatterns {
				if pattern.MatchString(tc.bullet) {
					matched = true
					break
				}
			}
			if !matched {
				t.Fatalf("no pattern matched %q", tc.bullet)
			}
		})
	}
}

func TestAnalyzeQuantificationBands(t *testing.T) {
	quantified := "Increased revenue by 25% through targeted campaigns"
	plain := "Collaborated with stakeholders on roadmap planning"

	cases := []struct {
		name    string
		bullets []any
		want    float64
	}{
		{"no bullets", nil, 0},
		{"all quantified", []any{quantified, quantified}, 15},
		{"half quantified", []any{quantified, plain}, 10},
		{"quarter quantified", []any{quantified, plain, plain, plain}, 5},
		{"none quantified", []any{plain, plain}, 2},
	}
	e := newTestEngine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := ResumeDocument{}
			if tc.bullets != nil {
				doc = bulletsDoc(tc.bullets...)
			}
			result := e.analyzeQuantification(doc)
			if result.Score != tc.want {
				t.Fatalf("score = %v, want %v", result.Score, tc.want)
			}
		})
	}
}

func TestAnalyzeQuantificationExamples(t *testing.T) {
	doc := bulletsDoc(
		"Increased revenue by 25% year over year",
		"Saved $40K in vendor costs",
		"Grew the newsletter to 10,000 subscribers",
		"Reduced build times by 80%",
	)
	result := newTestEngine().analyzeQuantification(doc)

	examples, _ := result.Details["examples"].([]string)
	if len(examples) != 3 {
		t.Fatalf("examples = %v, want exactly 3", examples)
	}
}
