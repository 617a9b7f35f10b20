package scores

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]ScoreRecord // userId -> records
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]ScoreRecord)}
}

// Create appends a record for its user.
func (r *MemoryRepo) Create(ctx context.Context, record ScoreRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.UserID] = append(r.data[record.UserID], record)
	return nil
}

// GetByID returns a record by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, scoreID string) (ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return ScoreRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.data[userID] {
		if record.ID == scoreID {
			return record, nil
		}
	}
	return ScoreRecord{}, ErrNotFound
}

// ListByUser returns records for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userRecords := r.data[userID]
	r.mu.RUnlock()

	if len(userRecords) == 0 || offset >= len(userRecords) {
		return []ScoreRecord{}, nil
	}

	records := make([]ScoreRecord, len(userRecords))
	copy(records, userRecords)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
