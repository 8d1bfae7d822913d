// Package module wires the hit log and exposes its ports
package module

import (
	"context"
	"time"

	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	"wordguard/internal/services/hits/domain"
	"wordguard/internal/services/hits/repo"
	"wordguard/internal/services/hits/service"
)

// Ports exposed by the hits module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the hits service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the hits module. Without ClickHouse, or with the hit log disabled, the
// ports drop writes and refuse queries
func New(deps modkit.Deps) *Module {
	return NewWithOptions(deps, FromConfig(deps.Cfg))
}

// NewWithOptions is New with explicit options
func NewWithOptions(deps modkit.Deps, opts Options) *Module {
	m := &Module{deps: deps, ports: Ports{Writer: service.Disabled{}, Query: service.Disabled{}}}
	if !opts.Enabled || deps.CH == nil {
		deps.Log.Info().Bool("enabled", opts.Enabled).Bool("clickhouse", deps.CH != nil).Msg("hit log off")
		return m
	}

	storage, err := repo.NewCH(deps.CH, opts.Table)
	if err != nil {
		deps.Log.Error().Err(err).Msg("hit log off")
		return m
	}
	if opts.EnsureSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := storage.EnsureSchema(ctx)
		cancel()
		if err != nil {
			deps.Log.Warn().Err(err).Str("table", opts.Table).Msg("hit table check failed")
		}
	}

	svc := service.New(storage, service.Config{HardLimit: opts.HardLimit, Window: opts.Window})
	m.ports = Ports{Writer: svc, Query: svc}
	deps.Log.Info().Str("table", opts.Table).Msg("hit log on")
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "hits" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module; the worker module has no routes
func (m *Module) MountRoutes(httpkit.Router) {}
