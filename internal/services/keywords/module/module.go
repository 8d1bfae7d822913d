// Package module wires the keyword catalog, its source and the reload loops
package module

import (
	"context"
	"time"

	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	"wordguard/internal/modkit/repokit"
	"wordguard/internal/services/keywords/domain"
	"wordguard/internal/services/keywords/repo"
	"wordguard/internal/services/keywords/service"
	"wordguard/internal/services/keywords/source"
	"wordguard/internal/services/keywords/watch"
)

// Ports exposed by the keywords module
type Ports struct {
	Service domain.ServicePort
}

// Module owns the keyword service; it has no routes of its own
type Module struct {
	deps  modkit.Deps
	opts  Options
	svc   *service.Svc
	ports Ports
}

// New builds the module from config and publishes the first keyword set to eng
func New(ctx context.Context, deps modkit.Deps, eng domain.EnginePort) (*Module, error) {
	return NewWithOptions(ctx, deps, eng, FromConfig(deps.Cfg))
}

// NewWithOptions is New with explicit options
func NewWithOptions(ctx context.Context, deps modkit.Deps, eng domain.EnginePort, opts Options) (*Module, error) {
	var r repo.Repo
	if deps.PG != nil {
		r = repokit.MustBind(repo.NewPG(), deps.PG)
		if opts.EnsureSchema {
			err := repokit.WithTx(ctx, deps.PG, repo.NewPG(), func(tx repo.Repo) error {
				return tx.EnsureSchema(ctx)
			})
			if err != nil {
				return nil, err
			}
		}
	}

	var lister source.WordLister
	if r != nil {
		lister = r
	}
	src, err := source.New(opts.Source, lister)
	if err != nil {
		return nil, err
	}

	svc := service.New(src, eng, r, service.Config{
		JumpLength:    opts.JumpLength,
		ReloadOnWrite: src.Name() == source.KindPG,
	})
	if _, err := svc.Reload(ctx); err != nil {
		return nil, err
	}

	return &Module{deps: deps, opts: opts, svc: svc, ports: Ports{Service: svc}}, nil
}

// Run keeps the published set fresh until ctx is done: it watches the pack file when
// enabled and polls when an interval is set. It returns at once when neither is on
func (m *Module) Run(ctx context.Context) error {
	if m.opts.Poll > 0 {
		go m.svc.Poll(ctx, m.opts.Poll)
	}
	if m.opts.Watch && m.opts.Source.Kind == source.KindFile {
		w := watch.File{Path: m.opts.Source.File, Debounce: m.opts.Debounce}
		return w.Run(ctx, func(ctx context.Context) {
			rctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			_, _ = m.svc.Reload(rctx)
		})
	}
	if m.opts.Poll > 0 {
		<-ctx.Done()
	}
	return nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "keywords" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
