// Package service loads keyword sets and publishes them to the matching engine
package service

import (
	"context"
	"sync"
	"time"

	perr "wordguard/internal/platform/errors"
	"wordguard/internal/platform/logger"
	"wordguard/internal/services/keywords/domain"
	"wordguard/internal/services/keywords/repo"
)

// Config for the keywords service
type Config struct {
	JumpLength int
	// ReloadOnWrite republishes after Add and Remove; set when the source is the catalog
	ReloadOnWrite bool
}

// Svc implements domain.ServicePort
type Svc struct {
	src  domain.SourcePort
	eng  domain.EnginePort
	repo repo.Repo // nil without postgres
	cfg  Config
	log  *logger.Logger

	mu   sync.Mutex // serializes reloads
	last domain.ReloadResult
}

// New returns the service. r may be nil, in which case the catalog operations are unavailable
func New(src domain.SourcePort, eng domain.EnginePort, r repo.Repo, cfg Config) *Svc {
	if src == nil {
		panic("keywords.Service requires a non nil source")
	}
	if eng == nil {
		panic("keywords.Service requires a non nil engine")
	}
	return &Svc{src: src, eng: eng, repo: r, cfg: cfg, log: logger.Named("keywords")}
}

// Reload loads the source and publishes it. A failed load or build keeps the current set
func (s *Svc) Reload(ctx context.Context) (domain.ReloadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	kws, err := s.src.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("source", s.src.Name()).Msg("keyword load failed")
		return domain.ReloadResult{}, perr.WithOp(err, "keywords.Reload")
	}
	if err := s.eng.Configure(kws, s.cfg.JumpLength); err != nil {
		s.log.Error().Err(err).Str("source", s.src.Name()).Msg("keyword build failed")
		return domain.ReloadResult{}, perr.WithOp(err, "keywords.Reload")
	}

	st := s.eng.Stats()
	res := domain.ReloadResult{
		Source:     s.src.Name(),
		Keywords:   st.Keywords,
		States:     st.States,
		JumpLength: st.JumpLength,
		DurationMS: time.Since(start).Milliseconds(),
	}
	s.last = res
	s.log.Info().
		Str("source", res.Source).
		Int("keyword_count", res.Keywords).
		Int("states", res.States).
		Int("jump_length", res.JumpLength).
		Dur("duration", time.Since(start)).
		Msg("keywords published")
	return res, nil
}

// Last returns the result of the most recent successful reload
func (s *Svc) Last() domain.ReloadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// List implements domain.ReaderPort
func (s *Svc) List(ctx context.Context) ([]domain.Keyword, error) {
	if s.repo == nil {
		return nil, errNoCatalog
	}
	return s.repo.List(ctx)
}

// Add implements domain.WriterPort
func (s *Svc) Add(ctx context.Context, in domain.AddInput) (domain.Keyword, error) {
	if s.repo == nil {
		return domain.Keyword{}, errNoCatalog
	}
	k, err := s.repo.Upsert(ctx, in.Word, in.Group)
	if err != nil {
		return domain.Keyword{}, err
	}
	if err := s.afterWrite(ctx); err != nil {
		return k, err
	}
	return k, nil
}

// Remove implements domain.WriterPort
func (s *Svc) Remove(ctx context.Context, in domain.RemoveInput) error {
	if s.repo == nil {
		return errNoCatalog
	}
	if err := s.repo.Delete(ctx, in.Word); err != nil {
		return err
	}
	return s.afterWrite(ctx)
}

func (s *Svc) afterWrite(ctx context.Context) error {
	if !s.cfg.ReloadOnWrite {
		return nil
	}
	_, err := s.Reload(ctx)
	return err
}

// Poll reloads every interval until ctx is done. Failures are logged and the current set stays
func (s *Svc) Poll(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = s.Reload(ctx)
		}
	}
}

var errNoCatalog = perr.Unavailablef("keyword catalog requires postgres")
