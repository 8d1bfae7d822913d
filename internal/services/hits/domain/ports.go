package domain

import (
	"context"
	"time"
)

// WriterPort records hits
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []HitWrite) error
}

// QueryPort aggregates recorded hits
type QueryPort interface {
	TopKeywords(ctx context.Context, since time.Time, limit int) ([]KeywordCount, error)
}
