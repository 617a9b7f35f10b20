package scores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateMarshalsPayloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := ScoreRecord{
		ID:             "score-1",
		UserID:         "user-1",
		DocumentID:     "doc-1",
		JobDescription: "Looking for a Go engineer with Postgres experience",
		ResumeHash:     "deadbeef",
		Resume:         map[string]any{"fullName": "Jane Doe"},
		Score:          72,
		Category:       "fair",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO scores").
		WithArgs(
			record.ID,
			record.UserID,
			record.DocumentID,
			record.JobDescription,
			record.ResumeHash,
			sqlmock.AnyArg(), // resume
			sqlmock.AnyArg(), // report
			record.Score,
			record.Category,
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScansJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "document_id", "job_description", "resume_hash",
		"resume", "report", "score", "category", "created_at",
	}).AddRow(
		"score-1", "user-1", nil, nil, "deadbeef",
		[]byte(`{"fullName":"Jane Doe"}`),
		[]byte(`{"score":72,"category":"fair"}`),
		72, "fair", createdAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM scores").
		WithArgs("user-1", "score-1").
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), "user-1", "score-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record.ID != "score-1" || record.Score != 72 || record.Category != "fair" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.DocumentID != "" || record.JobDescription != "" {
		t.Fatalf("expected null columns to stay empty, got %+v", record)
	}
	if got := record.Resume["fullName"]; got != "Jane Doe" {
		t.Fatalf("expected resume to round-trip, got %v", got)
	}
	if record.Report.Score != 72 {
		t.Fatalf("expected report score 72, got %d", record.Report.Score)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM scores").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "document_id", "job_description", "resume_hash",
			"resume", "report", "score", "category", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM scores").
		WithArgs("user-1", 100, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "document_id", "job_description", "resume_hash",
			"resume", "report", "score", "category", "created_at",
		}))

	if _, err := repo.ListByUser(context.Background(), "user-1", 500, -3); err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
