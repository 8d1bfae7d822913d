package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"wordguard/internal/core/detector"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/services/keywords/domain"
)

type fakeSource struct {
	words []string
	err   error
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) Load(context.Context) ([]string, error) {
	return f.words, f.err
}

// memRepo is a catalog that also serves as the source
type memRepo struct {
	kws []domain.Keyword
}

func (m *memRepo) List(context.Context) ([]domain.Keyword, error) { return m.kws, nil }
func (m *memRepo) Words(context.Context) ([]string, error) {
	out := make([]string, 0, len(m.kws))
	for _, k := range m.kws {
		out = append(out, k.Word)
	}
	return out, nil
}
func (m *memRepo) Upsert(_ context.Context, word, group string) (domain.Keyword, error) {
	k := domain.Keyword{ID: int64(len(m.kws) + 1), Word: word, Group: group}
	m.kws = append(m.kws, k)
	return k, nil
}
func (m *memRepo) Delete(_ context.Context, word string) error {
	i := slices.IndexFunc(m.kws, func(k domain.Keyword) bool { return k.Word == word })
	if i < 0 {
		return perr.NotFoundf("keyword %q not found", word)
	}
	m.kws = slices.Delete(m.kws, i, i+1)
	return nil
}
func (m *memRepo) EnsureSchema(context.Context) error { return nil }

type repoSource struct{ r *memRepo }

func (s repoSource) Name() string                               { return "pg" }
func (s repoSource) Load(ctx context.Context) ([]string, error) { return s.r.Words(ctx) }

func TestReload_Publishes(t *testing.T) {
	eng := detector.New()
	src := &fakeSource{words: []string{"bad", "BAD", "worse"}}
	svc := New(src, eng, nil, Config{JumpLength: 2})

	res, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if res.Source != "fake" || res.Keywords != 2 || res.JumpLength != 2 || res.States == 0 {
		t.Fatalf("result = %+v", res)
	}
	if !eng.ContainsAny("so b..ad") {
		t.Fatalf("engine not configured with jump 2")
	}
	if svc.Last() != res {
		t.Fatalf("Last = %+v", svc.Last())
	}
}

func TestReload_FailureKeepsCurrentSet(t *testing.T) {
	eng := detector.New()
	src := &fakeSource{words: []string{"bad"}}
	svc := New(src, eng, nil, Config{JumpLength: 1})
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	src.words, src.err = nil, errors.New("source down")
	if _, err := svc.Reload(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if !eng.ContainsAny("bad") {
		t.Fatalf("failed load replaced the keyword set")
	}

	bad := New(&fakeSource{words: []string{"worse"}}, eng, nil, Config{JumpLength: -1})
	_, err := bad.Reload(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("negative jump err = %v", err)
	}
	if !eng.ContainsAny("bad") || eng.ContainsAny("worse") {
		t.Fatalf("failed build replaced the keyword set")
	}
}

func TestCatalog_WithoutRepo(t *testing.T) {
	svc := New(&fakeSource{}, detector.New(), nil, Config{})
	ctx := context.Background()
	if _, err := svc.List(ctx); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("List err = %v", err)
	}
	if _, err := svc.Add(ctx, domain.AddInput{Word: "x"}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Add err = %v", err)
	}
	if err := svc.Remove(ctx, domain.RemoveInput{Word: "x"}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Remove err = %v", err)
	}
}

func TestCatalog_ReloadOnWrite(t *testing.T) {
	r := &memRepo{}
	eng := detector.New()
	svc := New(repoSource{r}, eng, r, Config{JumpLength: 1, ReloadOnWrite: true})
	ctx := context.Background()

	k, err := svc.Add(ctx, domain.AddInput{Word: "gross", Group: "mild"})
	if err != nil || k.Word != "gross" || k.Group != "mild" {
		t.Fatalf("Add = %+v, %v", k, err)
	}
	if !eng.ContainsAny("that is GROSS") {
		t.Fatalf("added keyword not published")
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %+v, %v", list, err)
	}

	if err := svc.Remove(ctx, domain.RemoveInput{Word: "gross"}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if eng.ContainsAny("that is gross") {
		t.Fatalf("removed keyword still published")
	}
	if err := svc.Remove(ctx, domain.RemoveInput{Word: "gross"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second Remove err = %v", err)
	}
}
