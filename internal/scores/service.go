package scores

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ats-score-backend/internal/ats"
	"ats-score-backend/internal/shared/metrics"
	"ats-score-backend/internal/shared/telemetry"
	"ats-score-backend/internal/shared/util"
)

// Service runs the scoring engine and persists results.
type Service struct {
	Repo   Repo
	Engine *ats.Engine
}

// ScoreInput carries one scoring request.
type ScoreInput struct {
	UserID         string
	DocumentID     string
	Resume         map[string]any
	JobDescription string
}

// Score analyzes a resume and stores the resulting report.
func (s *Service) Score(ctx context.Context, in ScoreInput) (ScoreRecord, error) {
	if in.UserID == "" {
		return ScoreRecord{}, errors.New("user id required")
	}
	if len(in.Resume) == 0 {
		return ScoreRecord{}, ErrInvalidInput
	}

	metrics.IncScoreStarted()
	started := time.Now()

	report := s.Engine.Analyze(ats.ResumeDocument(in.Resume), in.JobDescription)

	record := ScoreRecord{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		DocumentID:     in.DocumentID,
		JobDescription: in.JobDescription,
		ResumeHash:     util.HashPayload(in.Resume),
		Resume:         in.Resume,
		Report:         report,
		Score:          report.Score,
		Category:       report.Category,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		metrics.IncScoreFailed()
		return ScoreRecord{}, err
	}

	metrics.IncScoreCompleted()
	metrics.ObserveScoreDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("score.completed", map[string]any{
		"score_id": record.ID,
		"user_id":  record.UserID,
		"score":    record.Score,
		"category": record.Category,
		"keywords": report.Keywords != nil,
	})

	return record, nil
}

// Get returns a stored score record for a user.
func (s *Service) Get(ctx context.Context, userID, scoreID string) (ScoreRecord, error) {
	if userID == "" || scoreID == "" {
		return ScoreRecord{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, scoreID)
}

// List returns stored score records for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]ScoreRecord, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
