package scores

import (
	"time"

	"ats-score-backend/internal/ats"
)

// ScoreRecord is one persisted scoring run.
type ScoreRecord struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	DocumentID     string          `json:"documentId,omitempty"`
	JobDescription string          `json:"jobDescription,omitempty"`
	ResumeHash     string          `json:"resumeHash"`
	Resume         map[string]any  `json:"resume"`
	Report         ats.ScoreReport `json:"report"`
	Score          int             `json:"score"`
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"createdAt"`
}
