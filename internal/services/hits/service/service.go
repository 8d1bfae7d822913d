// Package service is the hit log service behind the hits ports
package service

import (
	"context"
	"time"

	perr "wordguard/internal/platform/errors"
	dom "wordguard/internal/services/hits/domain"
)

// Storage is what the service needs from a repository
type Storage interface {
	dom.WriterPort
	dom.QueryPort
}

// Config for the hits service
type Config struct {
	HardLimit int
	Window    time.Duration // default lookback for TopKeywords when since is zero
}

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	storage Storage
	cfg     Config
	now     func() time.Time
}

// New returns the service over storage
func New(storage Storage, cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	return &Service{storage: storage, cfg: cfg, now: time.Now}
}

// WriteBatch implements domain.WriterPort. Hits without a keyword are dropped
func (s *Service) WriteBatch(ctx context.Context, xs []dom.HitWrite) error {
	keep := xs[:0:0]
	for _, h := range xs {
		if h.Keyword == "" {
			continue
		}
		if h.At.IsZero() {
			h.At = s.now()
		}
		keep = append(keep, h)
	}
	if len(keep) == 0 {
		return nil
	}
	return s.storage.WriteBatch(ctx, keep)
}

// TopKeywords implements domain.QueryPort. limit is clamped to the hard limit
func (s *Service) TopKeywords(ctx context.Context, since time.Time, limit int) ([]dom.KeywordCount, error) {
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}
	if since.IsZero() {
		since = s.now().Add(-s.cfg.Window)
	}
	if since.After(s.now()) {
		return nil, perr.WithField(perr.InvalidArgf("since is in the future"), "since")
	}
	return s.storage.TopKeywords(ctx, since, limit)
}

// Disabled stands in when the hit log is off: writes are dropped, queries are unavailable
type Disabled struct{}

// WriteBatch implements domain.WriterPort
func (Disabled) WriteBatch(context.Context, []dom.HitWrite) error { return nil }

// TopKeywords implements domain.QueryPort
func (Disabled) TopKeywords(context.Context, time.Time, int) ([]dom.KeywordCount, error) {
	return nil, perr.Unavailablef("hit log is disabled")
}
