package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeTx struct {
	Queryer
	committed bool
}

func (f *fakeTx) Tx(ctx context.Context, fn func(Queryer) error) error {
	if err := fn(f); err != nil {
		return err
	}
	f.committed = true
	return nil
}

type guarder struct {
	err      error
	deadline bool
}

func (g *guarder) Guard(ctx context.Context) error {
	_, g.deadline = ctx.Deadline()
	return g.err
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg := ""
		switch x := r.(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		}
		if !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not contain %q", msg, want)
		}
	}()
	fn()
}

func TestBindAndWithTx(t *testing.T) {
	b := BindFunc[string](func(q Queryer) string {
		if q == nil {
			return "nil"
		}
		return "bound"
	})
	tx := &fakeTx{}
	var got string
	if err := WithTx(context.Background(), tx, b, func(r string) error { got = r; return nil }); err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if got != "bound" || !tx.committed {
		t.Fatalf("got %q committed=%v", got, tx.committed)
	}

	boom := errors.New("boom")
	tx = &fakeTx{}
	if err := WithTx(context.Background(), tx, b, func(string) error { return boom }); !errors.Is(err, boom) || tx.committed {
		t.Fatalf("failed fn must not commit: %v", err)
	}
	mustPanic(t, "nil Queryer", func() { MustBind[string](b, nil) })
}

func TestMustGuard(t *testing.T) {
	g := &guarder{}
	MustGuard(context.Background(), g)
	if !g.deadline {
		t.Fatalf("guard ran without a deadline")
	}
	mustPanic(t, "pg: down", func() { MustGuard(context.Background(), &guarder{err: errors.New("pg: down")}) })
}
