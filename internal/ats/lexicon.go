package ats

import "strings"

// Lexicon holds the read-only word lists the engine scores against.
// Build one with DefaultLexicon and share it freely; it is never mutated.
type Lexicon struct {
	actionVerbs        map[string][]string
	flatActionVerbs    []string
	weakVerbs          []string
	industryKeywords   map[string][]string
	softSkills         []string
	toolIndicators     []string
	knownTools         []string
	unprofessionalBits []string
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() *Lexicon {
	lex := &Lexicon{
		actionVerbs: map[string][]string{
			"leadership": {
				"led", "managed", "directed", "supervised", "coordinated",
				"oversaw", "spearheaded", "orchestrated", "mentored", "drove",
			},
			"achievement": {
				"achieved", "delivered", "exceeded", "generated", "increased",
				"reduced", "saved", "won", "grew", "expanded",
			},
			"development": {
				"built", "developed", "implemented", "engineered", "programmed",
				"architected", "deployed", "integrated", "automated", "migrated",
			},
			"improvement": {
				"improved", "optimized", "streamlined", "enhanced", "upgraded",
				"modernized", "accelerated", "transformed", "revamped", "resolved",
			},
			"communication": {
				"presented", "negotiated", "collaborated", "facilitated", "authored",
				"documented", "trained", "advised", "partnered", "promoted",
			},
			"analysis": {
				"analyzed", "evaluated", "researched", "assessed", "identified",
				"measured", "forecasted", "audited", "investigated", "modeled",
			},
			"creation": {
				"created", "designed", "launched", "established", "initiated",
				"founded", "pioneered", "produced", "introduced", "organized",
			},
		},
		weakVerbs: []string{
			"worked on", "helped with", "assisted", "was responsible for",
			"participated in", "involved in", "handled", "did various", "made sure",
		},
		industryKeywords: map[string][]string{
			"software": {
				"javascript", "typescript", "python", "java", "golang", "react",
				"angular", "vue", "node", "api", "rest", "graphql", "microservices",
				"ci/cd", "devops", "docker", "kubernetes", "git", "agile", "scrum",
			},
			"data": {
				"sql", "postgresql", "mongodb", "redis", "data analysis",
				"machine learning", "deep learning", "etl", "data pipeline",
				"tensorflow", "pytorch", "spark", "snowflake", "tableau", "power bi",
			},
			"cloud": {
				"aws", "azure", "gcp", "cloud", "terraform", "ansible",
				"serverless", "lambda", "infrastructure",
			},
			"marketing": {
				"seo", "sem", "content marketing", "google analytics", "campaign",
				"brand", "social media", "conversion", "engagement", "copywriting",
			},
			"finance": {
				"financial analysis", "budgeting", "forecasting", "accounting",
				"audit", "compliance", "risk management", "reporting", "excel",
			},
			"operations": {
				"project management", "process improvement", "stakeholder management",
				"vendor management", "quality assurance", "strategic planning",
				"supply chain", "logistics", "training", "documentation",
			},
		},
		softSkills: []string{
			"leadership", "communication", "teamwork", "problem-solving",
			"analytical", "collaboration", "adaptability", "time management",
			"organization", "detail-oriented", "creative", "critical thinking",
			"interpersonal", "negotiation", "presentation", "mentoring",
			"decision-making", "conflict resolution", "empathy", "initiative",
			"flexibility", "accountability", "multitasking", "prioritization",
			"active listening",
		},
		toolIndicators: []string{"software", "tool", "platform", "system"},
		knownTools: []string{
			"git", "jira", "confluence", "figma", "sketch", "photoshop",
			"excel", "powerpoint", "tableau", "salesforce", "hubspot", "slack",
		},
		unprofessionalBits: []string{
			"sexy", "hot", "cute", "babe", "dude", "killer", "gamer",
			"xxx", "420", "69",
		},
	}

	for _, category := range []string{
		"leadership", "achievement", "development", "improvement",
		"communication", "analysis", "creation",
	} {
		lex.flatActionVerbs = append(lex.flatActionVerbs, lex.actionVerbs[category]...)
	}
	return lex
}

// ActionVerbs returns every action verb across all categories.
func (l *Lexicon) ActionVerbs() []string {
	return l.flatActionVerbs
}

// WeakVerbs returns the weak verb phrases.
func (l *Lexicon) WeakVerbs() []string {
	return l.weakVerbs
}

// SoftSkills returns the soft skill terms.
func (l *Lexicon) SoftSkills() []string {
	return l.softSkills
}

// IndustryDomains returns the industry domain names in scoring order.
func (l *Lexicon) IndustryDomains() []string {
	return []string{"software", "data", "cloud", "marketing", "finance", "operations"}
}

// IndustryKeywords returns the keywords for one industry domain.
func (l *Lexicon) IndustryKeywords(domain string) []string {
	return l.industryKeywords[domain]
}

// IsIndustryTerm reports whether the lowercased value contains any industry keyword.
func (l *Lexicon) IsIndustryTerm(value string) bool {
	for _, domain := range l.IndustryDomains() {
		for _, term := range l.industryKeywords[domain] {
			if strings.Contains(value, term) {
				return true
			}
		}
	}
	return false
}

// IsSoftSkill reports whether the lowercased value contains any soft skill term.
func (l *Lexicon) IsSoftSkill(value string) bool {
	for _, term := range l.softSkills {
		if strings.Contains(value, term) {
			return true
		}
	}
	return false
}

// IsToolTerm reports whether the lowercased value looks like a tool reference.
func (l *Lexicon) IsToolTerm(value string) bool {
	for _, indicator := range l.toolIndicators {
		if strings.Contains(value, indicator) {
			return true
		}
	}
	for _, tool := range l.knownTools {
		if value == tool || strings.Contains(value, tool) {
			return true
		}
	}
	return false
}

// IsUnprofessionalEmail reports whether the email local part matches a pattern
// recruiters flag as unprofessional.
func (l *Lexicon) IsUnprofessionalEmail(email string) bool {
	local := strings.ToLower(email)
	if at := strings.Index(local, "@"); at >= 0 {
		local = local[:at]
	}
	for _, bit := range l.unprofessionalBits {
		if strings.Contains(local, bit) {
			return true
		}
	}
	return false
}
