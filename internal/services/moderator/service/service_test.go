package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"wordguard/internal/core/detector"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/services/moderator/domain"
	scansvc "wordguard/internal/services/scan/service"

	"github.com/segmentio/kafka-go"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	failAfter error
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if len(f.msgs) > 0 {
		m := f.msgs[0]
		f.msgs = f.msgs[1:]
		f.mu.Unlock()
		return m, nil
	}
	err := f.failAfter
	f.mu.Unlock()
	if err != nil {
		return kafka.Message{}, err
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) Close() error { return nil }

// fakeWriter fails the first failFirst calls and every verdict keyed by an id in failIDs
type fakeWriter struct {
	mu        sync.Mutex
	out       []kafka.Message
	calls     int
	failFirst int
	failIDs   map[string]bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failFirst {
		return errors.New("leader not available")
	}
	for _, m := range msgs {
		if f.failIDs[string(m.Key)] {
			return errors.New("broker down")
		}
	}
	f.out = append(f.out, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func msg(offset int64, v any) kafka.Message {
	b, _ := json.Marshal(v)
	return kafka.Message{Topic: "in", Offset: offset, Value: b}
}

func newModerator(t *testing.T, r domain.Reader, w domain.Writer) *Moderator {
	t.Helper()
	eng := detector.New()
	if err := eng.Configure([]string{"bad"}, 1); err != nil {
		t.Fatal(err)
	}
	scan, err := scansvc.New(eng, nil, scansvc.Config{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(scan.Close)
	m := New(r, w, scan, Config{Workers: 2, Mask: "#", WriteRetries: 2, RetryBackoff: time.Millisecond})
	m.newID = func() string { return "verdict" }
	return m
}

func TestRun_ModeratesAndCommits(t *testing.T) {
	r := &fakeReader{
		msgs: []kafka.Message{
			msg(1, domain.Message{ID: "a", Channel: "lobby", Text: "so b.a.d"}),
			msg(2, domain.Message{ID: "b", Text: "all good"}),
			{Topic: "in", Offset: 3, Value: []byte("{not json")},
			msg(4, map[string]string{"text": "no id"}),
		},
		failAfter: io.EOF,
	}
	w := &fakeWriter{}
	m := newModerator(t, r, w)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(w.out) != 2 {
		t.Fatalf("verdicts = %d", len(w.out))
	}
	byID := map[string]domain.Verdict{}
	for _, km := range w.out {
		var v domain.Verdict
		if err := json.Unmarshal(km.Value, &v); err != nil {
			t.Fatalf("decode verdict: %v", err)
		}
		if string(km.Key) != v.ID {
			t.Fatalf("key %q != id %q", km.Key, v.ID)
		}
		byID[v.ID] = v
	}
	a := byID["a"]
	if !a.Flagged || a.Masked != "so #####" || len(a.Matches) != 1 || a.VerdictID != "verdict" || a.Channel != "lobby" {
		t.Fatalf("verdict a = %+v", a)
	}
	if b := byID["b"]; b.Flagged || b.Masked != "all good" {
		t.Fatalf("verdict b = %+v", b)
	}

	// commits only move forward and end at the last offset
	if len(r.committed) == 0 || r.committed[len(r.committed)-1] != 4 {
		t.Fatalf("committed = %v", r.committed)
	}
	for i := 1; i < len(r.committed); i++ {
		if r.committed[i] <= r.committed[i-1] {
			t.Fatalf("commits went backwards: %v", r.committed)
		}
	}
	st := m.Stats()
	if st.Read != 4 || st.Flagged != 1 || st.Skipped != 2 || st.Failed != 0 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRun_FailedWriteHoldsBackLaterCommits(t *testing.T) {
	r := &fakeReader{
		msgs: []kafka.Message{
			msg(1, domain.Message{ID: "x", Text: "bad"}),
			msg(2, domain.Message{ID: "y", Text: "fine"}),
		},
		failAfter: io.EOF,
	}
	w := &fakeWriter{failIDs: map[string]bool{"x": true}}
	m := newModerator(t, r, w)

	err := m.Run(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Run err = %v, want unavailable", err)
	}
	// y was answered, but committing it would move the partition past x
	if len(r.committed) != 0 {
		t.Fatalf("committed = %v, want nothing past the failed offset", r.committed)
	}
	if len(w.out) != 1 || string(w.out[0].Key) != "y" {
		t.Fatalf("verdicts = %d", len(w.out))
	}
	if st := m.Stats(); st.Failed != 1 {
		t.Fatalf("stats = %+v", st)
	}
	// x got every attempt
	if w.calls != 3 {
		t.Fatalf("writer calls = %d, want 2 for x and 1 for y", w.calls)
	}
}

func TestRun_RetriesTransientWriteFailure(t *testing.T) {
	r := &fakeReader{
		msgs:      []kafka.Message{msg(5, domain.Message{ID: "x", Text: "bad"})},
		failAfter: io.EOF,
	}
	w := &fakeWriter{failFirst: 1}
	m := newModerator(t, r, w)
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(w.out) != 1 || len(r.committed) != 1 || r.committed[0] != 5 {
		t.Fatalf("verdicts = %d committed = %v", len(w.out), r.committed)
	}
	if st := m.Stats(); st.Failed != 0 || st.Flagged != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestOffsets_ReleasesContiguousPrefix(t *testing.T) {
	o := newOffsets()
	p0 := func(off int64) kafka.Message { return kafka.Message{Topic: "in", Partition: 0, Offset: off} }
	p1 := func(off int64) kafka.Message { return kafka.Message{Topic: "in", Partition: 1, Offset: off} }
	for _, m := range []kafka.Message{p0(1), p1(7), p0(2), p0(3)} {
		o.track(m)
	}

	if _, ok := o.finish(p0(2)); ok {
		t.Fatalf("offset 2 released before 1")
	}
	if last, ok := o.finish(p1(7)); !ok || last.Offset != 7 {
		t.Fatalf("partition 1 = %v %v", last.Offset, ok)
	}
	if last, ok := o.finish(p0(1)); !ok || last.Offset != 2 {
		t.Fatalf("after 1 released %v %v, want 2", last.Offset, ok)
	}
	if o.pending() != 1 {
		t.Fatalf("pending = %d", o.pending())
	}
	if last, ok := o.finish(p0(3)); !ok || last.Offset != 3 {
		t.Fatalf("after 3 released %v %v", last.Offset, ok)
	}
	if _, ok := o.finish(kafka.Message{Topic: "other", Offset: 1}); ok {
		t.Fatalf("untracked partition released")
	}
}

func TestRun_StopsOnCancelAndFetchError(t *testing.T) {
	m := newModerator(t, &fakeReader{}, &fakeWriter{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop")
	}

	m = newModerator(t, &fakeReader{failAfter: errors.New("auth failed")}, &fakeWriter{})
	if err := m.Run(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}
}
