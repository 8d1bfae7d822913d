// Package repo stores the keyword catalog in Postgres
package repo

import (
	"context"
	"strings"
	"time"

	"wordguard/internal/modkit/repokit"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/platform/store"
	"wordguard/internal/services/keywords/domain"
)

// Repo is the keyword catalog contract
type Repo interface {
	List(ctx context.Context) ([]domain.Keyword, error)
	Words(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, word, group string) (domain.Keyword, error)
	Delete(ctx context.Context, word string) error
	EnsureSchema(ctx context.Context) error
}

type (
	// PG binds the catalog to a Postgres queryer
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns the Postgres binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const schema = `
create table if not exists keywords (
	id         bigserial primary key,
	word       text not null unique check (length(btrim(word)) > 0),
	grp        text not null default '',
	created_at timestamptz not null default now()
)`

func (r *queries) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schema); err != nil {
		return perr.FromPostgres(err, "keywords: ensure schema")
	}
	return nil
}

func scanKeyword(row store.Row) (domain.Keyword, error) {
	var (
		k  domain.Keyword
		at time.Time
	)
	if err := row.Scan(&k.ID, &k.Word, &k.Group, &at); err != nil {
		return domain.Keyword{}, err
	}
	k.CreatedAt = at.UTC()
	return k, nil
}

func (r *queries) List(ctx context.Context) ([]domain.Keyword, error) {
	out, err := store.Many(ctx, r.q, scanKeyword,
		`select id, word, grp, created_at from keywords order by grp, word`)
	if err != nil {
		return nil, perr.FromPostgres(err, "keywords: list")
	}
	return out, nil
}

func (r *queries) Words(ctx context.Context) ([]string, error) {
	out, err := store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var w string
		err := row.Scan(&w)
		return w, err
	}, `select word from keywords order by id`)
	if err != nil {
		return nil, perr.FromPostgres(err, "keywords: words")
	}
	return out, nil
}

// Upsert inserts word or moves an existing word to group
func (r *queries) Upsert(ctx context.Context, word, group string) (domain.Keyword, error) {
	word = strings.TrimSpace(word)
	k, err := scanKeyword(r.q.QueryRow(ctx, `
insert into keywords (word, grp) values ($1, $2)
on conflict (word) do update set grp = excluded.grp
returning id, word, grp, created_at`, word, strings.TrimSpace(group)))
	if err != nil {
		return domain.Keyword{}, perr.FromPostgres(err, "keywords: upsert")
	}
	return k, nil
}

func (r *queries) Delete(ctx context.Context, word string) error {
	n, err := store.ExecN(ctx, r.q, `delete from keywords where word = $1`, strings.TrimSpace(word))
	if err != nil {
		return perr.FromPostgres(err, "keywords: delete")
	}
	if n == 0 {
		return perr.WithField(perr.NotFoundf("keyword %q not found", word), "word")
	}
	return nil
}
