// Package service runs scans against the shared engine and records accepted matches
package service

import (
	"context"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"wordguard/internal/core/detector"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/platform/logger"
	hitsdom "wordguard/internal/services/hits/domain"
	"wordguard/internal/services/scan/domain"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// Config for the scan service
type Config struct {
	Mask       rune   // default mask, detector.DefaultMask when zero
	MaxText    int    // rune limit per text, 0 for none
	Workers    int    // batch pool size
	RecordHits bool   // write accepted matches to the hit log
	Source     string // hit source tag
}

// Svc implements domain.ServicePort
type Svc struct {
	eng  *detector.Engine
	hits hitsdom.WriterPort
	pool *ants.Pool
	cfg  Config

	now   func() time.Time
	newID func() string
}

// New returns the service over eng. hits may be nil
func New(eng *detector.Engine, hits hitsdom.WriterPort, cfg Config) (*Svc, error) {
	if eng == nil {
		panic("scan.Service requires a non nil engine")
	}
	if cfg.Mask == 0 {
		cfg.Mask = detector.DefaultMask
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Source == "" {
		cfg.Source = "api"
	}
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "scan: worker pool")
	}
	return &Svc{
		eng:   eng,
		hits:  hits,
		pool:  pool,
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

// Close releases the batch pool
func (s *Svc) Close() { s.pool.Release() }

// Engine returns the engine the service scans with
func (s *Svc) Engine() *detector.Engine { return s.eng }

// Check implements domain.ServicePort
func (s *Svc) Check(_ context.Context, in domain.ScanInput) (domain.CheckResult, error) {
	if err := s.guard(in.Text, "text"); err != nil {
		return domain.CheckResult{}, err
	}
	return domain.CheckResult{Flagged: s.eng.ContainsAny(in.Text)}, nil
}

// First implements domain.ServicePort
func (s *Svc) First(ctx context.Context, in domain.ScanInput) (domain.FirstResult, error) {
	if err := s.guard(in.Text, "text"); err != nil {
		return domain.FirstResult{}, err
	}
	m, ok := s.eng.FindFirst(in.Text)
	if !ok {
		return domain.FirstResult{}, nil
	}
	s.record(ctx, in.Channel, []detector.Match{m})
	return domain.FirstResult{Found: true, Match: &m}, nil
}

// All implements domain.ServicePort
func (s *Svc) All(ctx context.Context, in domain.ScanInput) (domain.AllResult, error) {
	if err := s.guard(in.Text, "text"); err != nil {
		return domain.AllResult{}, err
	}
	all := s.eng.FindAll(in.Text)
	s.record(ctx, in.Channel, all)
	if all == nil {
		all = []detector.Match{}
	}
	return domain.AllResult{Count: len(all), Matches: all}, nil
}

// Mask implements domain.ServicePort
func (s *Svc) Mask(ctx context.Context, in domain.ReplaceInput) (domain.ReplaceResult, error) {
	if err := s.guard(in.Text, "text"); err != nil {
		return domain.ReplaceResult{}, err
	}
	m := s.eng.Matcher()
	all := m.FindAll(in.Text)
	s.record(ctx, in.Channel, all)
	return domain.ReplaceResult{Text: detector.Mask(in.Text, all, s.mask(in.Mask)), Count: len(all)}, nil
}

// Moderate implements domain.ServicePort
func (s *Svc) Moderate(ctx context.Context, in domain.ReplaceInput) (domain.ModerateResult, error) {
	if err := s.guard(in.Text, "text"); err != nil {
		return domain.ModerateResult{}, err
	}
	m := s.eng.Matcher()
	all := m.FindAll(in.Text)
	s.record(ctx, in.Channel, all)
	if all == nil {
		return domain.ModerateResult{Masked: in.Text, Matches: []detector.Match{}}, nil
	}
	return domain.ModerateResult{Flagged: true, Masked: detector.Mask(in.Text, all, s.mask(in.Mask)), Matches: all}, nil
}

// Batch implements domain.ServicePort. Every text is scanned against one keyword set
// snapshot on the worker pool; items keep input order
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchResult, error) {
	mode := in.Mode
	if mode == "" {
		mode = domain.ModeAll
	}
	for i, t := range in.Texts {
		if err := s.guard(t, "texts"); err != nil {
			return domain.BatchResult{}, perr.WithOp(err, "texts["+strconv.Itoa(i)+"]")
		}
	}

	m := s.eng.Matcher()
	mask := s.mask(in.Mask)
	items := make([]domain.BatchItem, len(in.Texts))
	found := make([][]detector.Match, len(in.Texts))

	var wg sync.WaitGroup
	for i := range in.Texts {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return domain.BatchResult{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scan: batch cancelled")
		}
		i := i
		task := func() {
			defer wg.Done()
			items[i], found[i] = scanOne(m, mode, mask, i, in.Texts[i])
		}
		wg.Add(1)
		if err := s.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	res := domain.BatchResult{Mode: mode, Items: items}
	var hits []detector.Match
	for i := range items {
		if items[i].Flagged {
			res.Flagged++
		}
		hits = append(hits, found[i]...)
	}
	s.record(ctx, in.Channel, hits)
	return res, nil
}

// scanOne returns the item for mode plus the matches to record
func scanOne(m *detector.Matcher, mode string, mask rune, i int, text string) (domain.BatchItem, []detector.Match) {
	it := domain.BatchItem{Index: i}
	switch mode {
	case domain.ModeContains:
		it.Flagged = m.ContainsAny(text)
		return it, nil
	case domain.ModeFirst:
		if x, ok := m.FindFirst(text); ok {
			it.Flagged, it.Matches = true, []detector.Match{x}
		}
		return it, it.Matches
	case domain.ModeReplace:
		all := m.FindAll(text)
		it.Flagged = len(all) > 0
		it.Text = detector.Mask(text, all, mask)
		return it, all
	}
	all := m.FindAll(text)
	it.Flagged, it.Matches = len(all) > 0, all
	return it, all
}

func (s *Svc) mask(in string) rune {
	if r, size := utf8.DecodeRuneInString(in); size > 0 && r != utf8.RuneError {
		return r
	}
	return s.cfg.Mask
}

func (s *Svc) guard(text, field string) error {
	if s.cfg.MaxText > 0 && utf8.RuneCountInString(text) > s.cfg.MaxText {
		return perr.WithField(perr.TooLargef("text exceeds %d characters", s.cfg.MaxText), field)
	}
	return nil
}

// record writes matches to the hit log. Failures are logged, never returned
func (s *Svc) record(ctx context.Context, channel string, ms []detector.Match) {
	if !s.cfg.RecordHits || s.hits == nil || len(ms) == 0 {
		return
	}
	at := s.now().UTC()
	xs := make([]hitsdom.HitWrite, 0, len(ms))
	for _, m := range ms {
		xs = append(xs, hitsdom.HitWrite{
			ID:      s.newID(),
			At:      at,
			Source:  s.cfg.Source,
			Channel: channel,
			Keyword: m.Keyword,
			Start:   m.Start,
			End:     m.End,
			Snippet: m.Source,
		})
	}
	if err := s.hits.WriteBatch(ctx, xs); err != nil {
		logger.C(ctx).Warn().Err(err).Int("hits", len(xs)).Msg("hit log write failed")
	}
}
