// Package repo stores hits in ClickHouse
package repo

import (
	"context"
	"fmt"
	"time"

	perr "wordguard/internal/platform/errors"
	"wordguard/internal/platform/store"
	"wordguard/internal/services/hits/domain"
)

// CH is the ClickHouse hit log
type CH struct {
	ch    store.Clickhouse
	table string
}

// NewCH returns the hit log over ch writing to table
func NewCH(ch store.Clickhouse, table string) (*CH, error) {
	if ch == nil {
		return nil, perr.Unavailablef("hits: clickhouse is not configured")
	}
	if !validIdent(table) {
		return nil, perr.WithField(perr.InvalidArgf("hits: invalid table name %q", table), "table")
	}
	return &CH{ch: ch, table: table}, nil
}

// EnsureSchema creates the hit table when missing
func (r *CH) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id      UUID,
	at      DateTime64(3, 'UTC'),
	source  LowCardinality(String),
	channel String,
	keyword String,
	span_start UInt32,
	span_end   UInt32,
	snippet String
) ENGINE = MergeTree
PARTITION BY toYYYYMM(at)
ORDER BY (keyword, at)`, r.table)
	if err := r.ch.Exec(ctx, ddl); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "hits: create table %s", r.table)
	}
	return nil
}

// WriteBatch inserts xs in one batch
func (r *CH) WriteBatch(ctx context.Context, xs []domain.HitWrite) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, h := range xs {
		rows = append(rows, []any{
			h.ID, h.At.UTC(), h.Source, h.Channel, h.Keyword,
			uint32(h.Start), uint32(h.End), h.Snippet,
		})
	}
	if err := r.ch.Insert(ctx, r.table, rows); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "hits: insert %d rows", len(xs))
	}
	return nil
}

// TopKeywords counts hits per keyword since the given time, most frequent first
func (r *CH) TopKeywords(ctx context.Context, since time.Time, limit int) ([]domain.KeywordCount, error) {
	q := fmt.Sprintf(`SELECT keyword, count() AS hits
FROM %s
WHERE at >= ?
GROUP BY keyword
ORDER BY hits DESC, keyword
LIMIT ?`, r.table)

	rows, err := r.ch.Query(ctx, q, since.UTC(), limit)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hits: top keywords")
	}
	defer rows.Close()

	var out []domain.KeywordCount
	for rows.Next() {
		var kc domain.KeywordCount
		if err := rows.Scan(&kc.Keyword, &kc.Hits); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "hits: scan top keywords")
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}

// validIdent accepts [A-Za-z_][A-Za-z0-9_]* with an optional database qualifier
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	prev := byte('.')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if prev == '.' {
				return false
			}
		case c == '.':
			if prev == '.' || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
		prev = c
	}
	return true
}
