package scores

import "errors"

var (
	ErrNotFound     = errors.New("score not found")
	ErrInvalidInput = errors.New("invalid input")
)
