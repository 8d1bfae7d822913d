// Package module wires meta endpoints into the API
package module

import (
	"time"

	modkit "wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	metahttp "wordguard/internal/services/api/meta/http"
)

// Ports are what meta reports on; injected with modkit.WithPorts
type Ports struct {
	Engine metahttp.StatsSource
}

// Module serves /meta
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs the meta module. serviceName labels health and version output
func New(deps modkit.Deps, serviceName string, opts ...modkit.Option) modkit.Module {
	m := &Module{startedAt: time.Now()}
	m.Base = modkit.NewBase("meta", "/meta", append(opts, modkit.WithRegister(func(r httpkit.Router) {
		var eng metahttp.StatsSource
		if p, ok := m.Built.Ports.(Ports); ok {
			eng = p.Engine
		}
		checks := []metahttp.Check{{Name: "pg"}, {Name: "ch"}}
		if p, ok := deps.PG.(metahttp.Pinger); ok {
			checks[0].Pinger = p
		}
		if deps.CH != nil {
			checks[1].Pinger = deps.CH
		}
		metahttp.Register(r, metahttp.Deps{
			ServiceName: serviceName,
			StartedAt:   m.startedAt,
			Checks:      checks,
			Engine:      eng,
		})
	}))...)
	return m
}
