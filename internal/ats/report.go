package ats

import "time"

// Severity levels for issues.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Priority levels for suggestions and tips.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Score categories, highest band first.
const (
	CategoryExcellent        = "excellent"
	CategoryGood             = "good"
	CategoryFair             = "fair"
	CategoryNeedsImprovement = "needs_improvement"
	CategoryPoor             = "poor"
)

// Issue describes a concrete problem found in a resume section.
type Issue struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// Suggestion is an actionable improvement recommendation.
type Suggestion struct {
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Impact   string `json:"impact,omitempty"`
}

// SectionResult is one analyzer's bounded sub-score plus diagnostics.
// Invariant: 0 <= Score <= Max.
type SectionResult struct {
	Score       float64
	Max         float64
	Issues      []Issue
	Suggestions []Suggestion
	Details     map[string]any
}

// KeywordSet groups keywords by category.
type KeywordSet struct {
	HardSkills   []string `json:"hardSkills"`
	SoftSkills   []string `json:"softSkills"`
	Tools        []string `json:"tools"`
	Requirements []string `json:"requirements"`
}

// KeywordMatch is the result of matching job-description keywords against the resume.
type KeywordMatch struct {
	MatchPercentage int        `json:"matchPercentage"`
	Matched         KeywordSet `json:"matched"`
	Missing         KeywordSet `json:"missing"`
	TotalFound      int        `json:"totalFound"`
	TotalInJob      int        `json:"totalInJob"`
}

// SectionFlags marks which resume sections are present.
type SectionFlags struct {
	HasSummary        bool `json:"hasSummary"`
	HasExperience     bool `json:"hasExperience"`
	HasEducation      bool `json:"hasEducation"`
	HasSkills         bool `json:"hasSkills"`
	HasContact        bool `json:"hasContact"`
	HasCertifications bool `json:"hasCertifications"`
	HasProjects       bool `json:"hasProjects"`
	HasAchievements   bool `json:"hasAchievements"`
}

// FormatReport is the structural half of a score report.
type FormatReport struct {
	Score       int            `json:"score"`
	Issues      []Issue        `json:"issues"`
	Suggestions []Suggestion   `json:"suggestions"`
	Sections    SectionFlags   `json:"sections"`
	Metrics     map[string]int `json:"metrics"`
}

// Tip is a ranked, display-ready recommendation.
type Tip struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// ScoreReport is the full analysis result for one resume.
type ScoreReport struct {
	Score      int           `json:"score"`
	Category   string        `json:"category"`
	Format     FormatReport  `json:"format"`
	Keywords   *KeywordMatch `json:"keywords"`
	Tips       []Tip         `json:"tips"`
	Strengths  []string      `json:"strengths"`
	AnalyzedAt time.Time     `json:"analyzedAt"`
}

// CategoryFor maps an overall score to its band, evaluated top-down.
func CategoryFor(score int) string {
	switch {
	case score >= 90:
		return CategoryExcellent
	case score >= 75:
		return CategoryGood
	case score >= 60:
		return CategoryFair
	case score >= 40:
		return CategoryNeedsImprovement
	default:
		return CategoryPoor
	}
}
