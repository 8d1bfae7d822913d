package service

import (
	"context"
	"testing"
	"time"

	perr "wordguard/internal/platform/errors"
	dom "wordguard/internal/services/hits/domain"
)

type memStorage struct {
	written []dom.HitWrite
	since   time.Time
	limit   int
}

func (m *memStorage) WriteBatch(_ context.Context, xs []dom.HitWrite) error {
	m.written = append(m.written, xs...)
	return nil
}

func (m *memStorage) TopKeywords(_ context.Context, since time.Time, limit int) ([]dom.KeywordCount, error) {
	m.since, m.limit = since, limit
	return []dom.KeywordCount{{Keyword: "bad", Hits: 1}}, nil
}

func TestWriteBatch_DropsEmptyAndStamps(t *testing.T) {
	st := &memStorage{}
	svc := New(st, Config{})
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	in := []dom.HitWrite{{ID: "a", Keyword: "bad"}, {ID: "b"}}
	if err := svc.WriteBatch(context.Background(), in); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if len(st.written) != 1 || st.written[0].ID != "a" || !st.written[0].At.Equal(now) {
		t.Fatalf("written = %+v", st.written)
	}
	if in[0].At != (time.Time{}) {
		t.Fatalf("caller slice was modified")
	}
}

func TestTopKeywords_Defaults(t *testing.T) {
	st := &memStorage{}
	svc := New(st, Config{HardLimit: 10, Window: time.Hour})
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	tests := []struct {
		name      string
		since     time.Time
		limit     int
		wantSince time.Time
		wantLimit int
	}{
		{name: "zero uses window", limit: 3, wantSince: now.Add(-time.Hour), wantLimit: 3},
		{name: "clamped", since: now.Add(-time.Minute), limit: 500, wantSince: now.Add(-time.Minute), wantLimit: 10},
		{name: "non-positive", since: now.Add(-time.Minute), limit: 0, wantSince: now.Add(-time.Minute), wantLimit: 10},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.TopKeywords(context.Background(), tc.since, tc.limit); err != nil {
				t.Fatalf("TopKeywords: %v", err)
			}
			if !st.since.Equal(tc.wantSince) || st.limit != tc.wantLimit {
				t.Fatalf("since=%v limit=%d", st.since, st.limit)
			}
		})
	}

	if _, err := svc.TopKeywords(context.Background(), now.Add(time.Hour), 1); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("future since err = %v", err)
	}
}

func TestDisabled(t *testing.T) {
	var d Disabled
	if err := d.WriteBatch(context.Background(), []dom.HitWrite{{Keyword: "x"}}); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if _, err := d.TopKeywords(context.Background(), time.Time{}, 1); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v", err)
	}
}
