package store

import "wordguard/internal/platform/logger"

// Option adjusts a Store during Open
type Option func(*Store)

// WithLogger sets the logger backends trace through
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}
