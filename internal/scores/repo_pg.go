package scores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"ats-score-backend/internal/ats"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new score record.
func (r *PGRepo) Create(ctx context.Context, record ScoreRecord) error {
	const query = `
INSERT INTO scores (
	id, user_id, document_id, job_description, resume_hash, resume, report, score, category, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	resumePayload, err := marshalJSONB(record.Resume)
	if err != nil {
		return err
	}
	reportPayload, err := json.Marshal(record.Report)
	if err != nil {
		return err
	}

	var documentID sql.NullString
	if record.DocumentID != "" {
		documentID = sql.NullString{String: record.DocumentID, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		documentID,
		record.JobDescription,
		record.ResumeHash,
		resumePayload,
		reportPayload,
		record.Score,
		record.Category,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a score record by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, scoreID string) (ScoreRecord, error) {
	const query = `
SELECT id, user_id, document_id, job_description, resume_hash, resume, report, score, category, created_at
FROM scores
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	record, err := scanRecord(r.DB.QueryRowContext(ctx, query, userID, scoreID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScoreRecord{}, ErrNotFound
		}
		return ScoreRecord{}, err
	}
	return record, nil
}

// ListByUser lists score records ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, document_id, job_description, resume_hash, resume, report, score, category, created_at
FROM scores
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (ScoreRecord, error) {
	var record ScoreRecord
	var documentID sql.NullString
	var jobDescription sql.NullString
	var resumeRaw []byte
	var reportRaw []byte
	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&documentID,
		&jobDescription,
		&record.ResumeHash,
		&resumeRaw,
		&reportRaw,
		&record.Score,
		&record.Category,
		&record.CreatedAt,
	); err != nil {
		return ScoreRecord{}, err
	}
	if documentID.Valid {
		record.DocumentID = documentID.String
	}
	if jobDescription.Valid {
		record.JobDescription = jobDescription.String
	}
	if len(resumeRaw) > 0 {
		if err := json.Unmarshal(resumeRaw, &record.Resume); err != nil {
			return ScoreRecord{}, err
		}
	}
	if len(reportRaw) > 0 {
		var report ats.ScoreReport
		if err := json.Unmarshal(reportRaw, &report); err != nil {
			return ScoreRecord{}, err
		}
		record.Report = report
	}
	return record, nil
}

func marshalJSONB(value map[string]any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return json.Marshal(value)
}

var _ Repo = (*PGRepo)(nil)
