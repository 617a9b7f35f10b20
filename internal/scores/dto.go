package scores

import (
	"time"

	"ats-score-backend/internal/ats"
)

// ScoreRequest is the inbound scoring payload.
type ScoreRequest struct {
	Resume         map[string]any `json:"resume"`
	JobDescription string         `json:"jobDescription"`
	DocumentID     string         `json:"documentId"`
}

// ScoreResponse is the outward-facing representation of a scoring run.
type ScoreResponse struct {
	ScoreID   string          `json:"scoreId"`
	Report    ats.ScoreReport `json:"report"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ScoreSummary is the list-view representation, without the full report.
type ScoreSummary struct {
	ScoreID   string    `json:"scoreId"`
	Score     int       `json:"score"`
	Category  string    `json:"category"`
	HasJob    bool      `json:"hasJobDescription"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(record ScoreRecord) ScoreResponse {
	return ScoreResponse{
		ScoreID:   record.ID,
		Report:    record.Report,
		CreatedAt: record.CreatedAt,
	}
}

func toSummary(record ScoreRecord) ScoreSummary {
	return ScoreSummary{
		ScoreID:   record.ID,
		Score:     record.Score,
		Category:  record.Category,
		HasJob:    record.JobDescription != "",
		CreatedAt: record.CreatedAt,
	}
}
