package scores

import "context"

// Repo defines persistence operations for score records.
type Repo interface {
	Create(ctx context.Context, record ScoreRecord) error
	GetByID(ctx context.Context, userID, scoreID string) (ScoreRecord, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]ScoreRecord, error)
}
