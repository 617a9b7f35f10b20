package documents

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"ats-score-backend/internal/extract"
	"ats-score-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage and records the document.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Current returns the latest document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Extract pulls the plain text out of a stored document and records the
// derived text object. Re-extraction reuses the stored copy.
func (s *Service) Extract(ctx context.Context, userID, documentID string) (Document, string, error) {
	if userID == "" || documentID == "" {
		return Document{}, "", ErrInvalidInput
	}

	doc, err := s.Repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return Document{}, "", err
	}

	if doc.ExtractedTextKey != "" {
		body, err := s.Store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			if raw, err := io.ReadAll(body); err == nil {
				return doc, string(raw), nil
			}
		}
		// Stored copy unreadable; fall through and re-extract.
	}

	text, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return Document{}, "", err
	}

	extractedAt := time.Now().UTC()
	extractedKey := doc.StorageKey + ".extracted.txt"
	if err := s.Repo.UpdateExtraction(ctx, userID, documentID, extractedKey, extractedAt); err != nil {
		return Document{}, "", err
	}
	doc.ExtractedTextKey = extractedKey
	doc.ExtractedAt = &extractedAt

	return doc, text, nil
}
