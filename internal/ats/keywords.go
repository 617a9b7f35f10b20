package ats

import (
	"math"
	"regexp"
	"strings"
)

// jobDescriptionThreshold is the minimum trimmed length before keyword analysis
// engages.
const jobDescriptionThreshold = 50

// maxKeywords caps the extracted keyword set.
const maxKeywords = 50

var keywordCapturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:experience with|knowledge of|proficiency in|expertise in|familiar with)\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)(?:required|preferred|must have|should have):\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)(\d+\+?\s*years?)\s*(?:of\s*)?experience`),
}

// extractKeywords derives a capped, de-duplicated keyword set from a job
// description. Lexicon hits come first in domain order, then soft skills, then
// pattern captures in document order.
func (e *Engine) extractKeywords(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)
	seen := map[string]bool{}
	var keywords []string

	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if len(term) <= 2 || seen[term] {
			return
		}
		seen[term] = true
		keywords = append(keywords, term)
	}

	for _, domain := range e.lex.IndustryDomains() {
		for _, term := range e.lex.IndustryKeywords(domain) {
			if strings.Contains(lower, term) {
				add(term)
			}
		}
	}
	for _, term := range e.lex.SoftSkills() {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	for _, pattern := range keywordCapturePatterns {
		for _, match := range pattern.FindAllStringSubmatch(jobDescription, -1) {
			for _, piece := range strings.FieldsFunc(match[1], func(r rune) bool {
				return r == ',' || r == ';'
			}) {
				add(piece)
			}
		}
	}

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// matchKeywords checks each keyword against the resume content and buckets it
// by category. With zero keywords extracted the match percentage falls back to
// the configured neutral default.
func (e *Engine) matchKeywords(doc ResumeDocument, keywords []string) *KeywordMatch {
	text := doc.searchText()
	skills := make([]string, 0, len(doc.skillNames()))
	for _, name := range doc.skillNames() {
		skills = append(skills, strings.ToLower(name))
	}

	match := &KeywordMatch{TotalInJob: len(keywords)}
	if len(keywords) == 0 {
		match.MatchPercentage = e.opts.NeutralMatchPercent
		return match
	}

	matched := 0
	for _, keyword := range keywords {
		hit := strings.Contains(text, keyword)
		if !hit {
			for _, skill := range skills {
				if strings.Contains(skill, keyword) || strings.Contains(keyword, skill) {
					hit = true
					break
				}
			}
		}

		target := &match.Missing
		if hit {
			matched++
			target = &match.Matched
		}
		switch {
		case e.lex.IsIndustryTerm(keyword):
			target.HardSkills = append(target.HardSkills, keyword)
		case e.lex.IsSoftSkill(keyword):
			target.SoftSkills = append(target.SoftSkills, keyword)
		case e.lex.IsToolTerm(keyword):
			target.Tools = append(target.Tools, keyword)
		default:
			target.Requirements = append(target.Requirements, keyword)
		}
	}

	match.TotalFound = matched
	match.MatchPercentage = int(math.Round(100 * float64(matched) / float64(len(keywords))))
	return match
}
