package ats

import (
	"math"
	"strings"
	"time"
)

// Options tune engine behavior.
type Options struct {
	// NeutralMatchPercent is the match percentage reported when a job
	// description passes the length threshold but yields zero keywords.
	NeutralMatchPercent int
}

// DefaultNeutralMatchPercent mirrors the long-standing production default.
const DefaultNeutralMatchPercent = 50

// Engine scores resumes for ATS compatibility. It is stateless apart from its
// read-only lexicon and safe for concurrent use.
type Engine struct {
	lex  *Lexicon
	opts Options
	now  func() time.Time
}

// New builds an engine with the default lexicon.
func New(opts Options) *Engine {
	if opts.NeutralMatchPercent <= 0 {
		opts.NeutralMatchPercent = DefaultNeutralMatchPercent
	}
	return &Engine{
		lex:  DefaultLexicon(),
		opts: opts,
		now:  time.Now,
	}
}

// Analyze scores one resume, optionally matched against a job description.
// Keyword analysis engages only when the trimmed job description is longer
// than 50 characters; otherwise Keywords is nil and the overall score equals
// the format score.
func (e *Engine) Analyze(doc ResumeDocument, jobDescription string) ScoreReport {
	results := map[string]SectionResult{
		SectionContact:        clampSection(e.analyzeContact(doc)),
		SectionSummary:        clampSection(e.analyzeSummary(doc)),
		SectionExperience:     clampSection(e.analyzeExperience(doc)),
		SectionEducation:      clampSection(e.analyzeEducation(doc)),
		SectionSkills:         clampSection(e.analyzeSkills(doc)),
		SectionFormatting:     clampSection(e.analyzeFormatting(doc)),
		SectionActionVerbs:    clampSection(e.analyzeActionVerbs(doc)),
		SectionQuantification: clampSection(e.analyzeQuantification(doc)),
	}

	var keywords *KeywordMatch
	if trimmed := strings.TrimSpace(jobDescription); len(trimmed) > jobDescriptionThreshold {
		keywords = e.matchKeywords(doc, e.extractKeywords(trimmed))
	}

	format := formatScore(results)
	score := clampScore(overallScore(format, keywords))

	var issues []Issue
	metrics := make(map[string]int, len(sectionOrder))
	for _, name := range sectionOrder {
		issues = append(issues, results[name].Issues...)
		metrics[name] = int(math.Round(sectionPercent(results[name])))
	}

	return ScoreReport{
		Score:    score,
		Category: CategoryFor(score),
		Format: FormatReport{
			Score:       format,
			Issues:      issues,
			Suggestions: allSuggestions(results),
			Sections:    sectionFlags(doc),
			Metrics:     metrics,
		},
		Keywords:   keywords,
		Tips:       rankTips(results),
		Strengths:  deriveStrengths(results),
		AnalyzedAt: e.now().UTC(),
	}
}

func allSuggestions(results map[string]SectionResult) []Suggestion {
	var out []Suggestion
	for _, name := range sectionOrder {
		out = append(out, results[name].Suggestions...)
	}
	return out
}

func sectionFlags(doc ResumeDocument) SectionFlags {
	info := doc.personalInfo()
	return SectionFlags{
		HasSummary:        len(doc.summary()) > 50,
		HasExperience:     len(doc.experience()) > 0,
		HasEducation:      len(doc.education()) > 0,
		HasSkills:         len(doc.skills()) > 0,
		HasContact:        firstString(info, "email") != "" && firstString(info, "fullName", "name") != "",
		HasCertifications: doc.sectionLen("certifications") > 0,
		HasProjects:       doc.sectionLen("projects") > 0,
		HasAchievements:   doc.sectionLen("achievements") > 0,
	}
}

// clampSection keeps a sub-score inside [0, Max] even if an analyzer drifts.
func clampSection(result SectionResult) SectionResult {
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > result.Max {
		result.Score = result.Max
	}
	return result
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
