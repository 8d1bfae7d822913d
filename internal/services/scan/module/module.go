// Package module owns the shared matching engine and the scan service
package module

import (
	"wordguard/internal/core/detector"
	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	hitsdom "wordguard/internal/services/hits/domain"
	"wordguard/internal/services/scan/domain"
	"wordguard/internal/services/scan/service"
)

// Ports exposed by the scan module
type Ports struct {
	Service domain.ServicePort
	Engine  domain.EnginePort
}

// Module holds the engine every scan and reload goes through
type Module struct {
	deps  modkit.Deps
	eng   *detector.Engine
	svc   *service.Svc
	ports Ports
}

// New builds the engine with no keywords; the keywords module publishes the first set.
// hits may be nil
func New(deps modkit.Deps, hits hitsdom.WriterPort) (*Module, error) {
	return NewWithOptions(deps, hits, FromConfig(deps.Cfg))
}

// NewWithOptions is New with explicit options
func NewWithOptions(deps modkit.Deps, hits hitsdom.WriterPort, opts Options) (*Module, error) {
	eng := detector.NewWithOptions(detector.Options{JumpLength: opts.JumpLength})
	svc, err := service.New(eng, hits, service.Config{
		Mask:       opts.Mask,
		MaxText:    opts.MaxText,
		Workers:    opts.Workers,
		RecordHits: opts.RecordHits,
		Source:     opts.Source,
	})
	if err != nil {
		return nil, err
	}
	return &Module{
		deps:  deps,
		eng:   eng,
		svc:   svc,
		ports: Ports{Service: svc, Engine: eng},
	}, nil
}

// Engine returns the shared engine
func (m *Module) Engine() *detector.Engine { return m.eng }

// Close releases the scan worker pool
func (m *Module) Close() { m.svc.Close() }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "scan" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
