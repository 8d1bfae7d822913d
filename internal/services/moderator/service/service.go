// Package service consumes texts from a topic, moderates them on a worker pool and
// publishes verdicts
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	perr "wordguard/internal/platform/errors"
	"wordguard/internal/platform/logger"
	"wordguard/internal/services/moderator/domain"
	scandom "wordguard/internal/services/scan/domain"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/segmentio/kafka-go"
)

// Config for the moderator
type Config struct {
	Workers      int
	Mask         string
	WriteTimeout time.Duration
	// WriteRetries is how many times a verdict write is attempted before the run stops
	WriteRetries int
	// RetryBackoff is the first pause between attempts; it doubles up to maxBackoff
	RetryBackoff time.Duration
}

const maxBackoff = 5 * time.Second

// Counters are running totals since start
type Counters struct {
	Read    int64 `json:"read"`
	Flagged int64 `json:"flagged"`
	Skipped int64 `json:"skipped"`
	Failed  int64 `json:"failed"`
}

// Moderator reads, scans and publishes until its context ends
type Moderator struct {
	r    domain.Reader
	w    domain.Writer
	scan scandom.ServicePort
	cfg  Config
	log  *logger.Logger

	read, flagged, skipped, failed atomic.Int64

	offsets  *offsets
	commitMu sync.Mutex
	abort    context.CancelCauseFunc

	now   func() time.Time
	newID func() string
}

// New returns a moderator over r and w
func New(r domain.Reader, w domain.Writer, scan scandom.ServicePort, cfg Config) *Moderator {
	if r == nil || w == nil || scan == nil {
		panic("moderator requires a reader, a writer and a scan service")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.WriteRetries <= 0 {
		cfg.WriteRetries = 5
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 250 * time.Millisecond
	}
	return &Moderator{
		r:     r,
		w:     w,
		scan:  scan,
		cfg:   cfg,
		log:   logger.Named("moderator"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Run consumes until ctx is done, the reader fails for good or a verdict cannot be
// written. In-flight messages finish before it returns. Offsets are committed per partition
// only up to the first message still unfinished, so a message whose verdict was never
// written is fetched again by the next consumer of its partition. Run must not be called
// concurrently
func (m *Moderator) Run(ctx context.Context) error {
	pool, err := ants.NewPool(m.cfg.Workers)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "moderator: worker pool")
	}
	defer pool.Release()

	runCtx, abort := context.WithCancelCause(ctx)
	defer abort(nil)
	m.offsets, m.abort = newOffsets(), abort

	var wg sync.WaitGroup
	err = m.consume(runCtx, pool, &wg)
	wg.Wait()

	if ctx.Err() == nil {
		if cause := context.Cause(runCtx); cause != nil {
			return cause
		}
	}
	if n := m.offsets.pending(); n > 0 {
		m.log.Warn().Int("uncommitted", n).Msg("stopping with uncommitted messages")
	}
	return err
}

func (m *Moderator) consume(ctx context.Context, pool *ants.Pool, wg *sync.WaitGroup) error {
	m.log.Info().Int("workers", m.cfg.Workers).Msg("moderator consuming")
	for {
		msg, err := m.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			m.log.Error().Err(err).Msg("fetch failed")
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "moderator: fetch")
		}
		m.read.Add(1)
		m.offsets.track(msg)

		wg.Add(1)
		task := func() {
			defer wg.Done()
			m.handle(ctx, msg)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
}

// handle moderates one message and marks it finished once its verdict is written.
// Undecodable messages are finished and skipped. A verdict that cannot be written after
// the configured attempts stops the run and its message stays unfinished
func (m *Moderator) handle(ctx context.Context, msg kafka.Message) {
	log := m.log.With().Str("topic", msg.Topic).Int("partition", msg.Partition).Int64("offset", msg.Offset).Logger()

	var in domain.Message
	if err := json.Unmarshal(msg.Value, &in); err != nil || in.ID == "" {
		m.skipped.Add(1)
		log.Warn().Err(err).Msg("skipping malformed message")
		m.finish(msg)
		return
	}

	v, err := m.Moderate(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.skipped.Add(1)
		log.Warn().Err(err).Str("id", in.ID).Msg("skipping message")
		m.finish(msg)
		return
	}

	body, err := json.Marshal(v)
	if err == nil {
		err = m.write(ctx, kafka.Message{Key: []byte(in.ID), Value: body})
	}
	if err != nil {
		m.failed.Add(1)
		log.Error().Err(err).Str("id", in.ID).Msg("verdict not written")
		m.abort(perr.Wrapf(err, perr.ErrorCodeUnavailable,
			"moderator: verdict for %s[%d]@%d not written", msg.Topic, msg.Partition, msg.Offset))
		return
	}
	if v.Flagged {
		m.flagged.Add(1)
	}
	m.finish(msg)
}

// write publishes one verdict, retrying with a doubling pause. It gives up early when ctx ends
func (m *Moderator) write(ctx context.Context, out kafka.Message) error {
	wait := m.cfg.RetryBackoff
	var err error
	for attempt := 1; ; attempt++ {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.WriteTimeout)
		err = m.w.WriteMessages(wctx, out)
		cancel()
		if err == nil || attempt >= m.cfg.WriteRetries {
			return err
		}
		m.log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("verdict write failed, retrying")

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
		wait = min(2*wait, maxBackoff)
	}
}

// finish releases msg and commits the partition's contiguous finished prefix. Commits are
// serialized so a partition's committed offset never moves backwards
func (m *Moderator) finish(msg kafka.Message) {
	m.commitMu.Lock()
	defer m.commitMu.Unlock()
	last, ok := m.offsets.finish(msg)
	if !ok {
		return
	}
	if err := m.r.CommitMessages(context.Background(), last); err != nil {
		m.log.Error().Err(err).Int64("offset", last.Offset).Msg("commit failed")
	}
}

// Moderate builds the verdict for one message
func (m *Moderator) Moderate(ctx context.Context, in domain.Message) (domain.Verdict, error) {
	res, err := m.scan.Moderate(ctx, scandom.ReplaceInput{Text: in.Text, Mask: m.cfg.Mask, Channel: in.Channel})
	if err != nil {
		return domain.Verdict{}, err
	}
	return domain.Verdict{
		ID:        in.ID,
		VerdictID: m.newID(),
		Flagged:   res.Flagged,
		Masked:    res.Masked,
		Matches:   res.Matches,
		Channel:   in.Channel,
		At:        m.now().UTC(),
	}, nil
}

// Stats returns the running counters
func (m *Moderator) Stats() Counters {
	return Counters{
		Read:    m.read.Load(),
		Flagged: m.flagged.Load(),
		Skipped: m.skipped.Load(),
		Failed:  m.failed.Load(),
	}
}
