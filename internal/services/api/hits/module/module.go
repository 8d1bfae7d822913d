// Package module mounts the hit log API
package module

import (
	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	hitshttp "wordguard/internal/services/api/hits/http"
	"wordguard/internal/services/hits/domain"
)

// Ports are injected from the hits worker module with modkit.WithPorts
type Ports struct {
	Query domain.QueryPort
}

// Module serves /hits
type Module struct {
	modkit.Base
}

// New constructs the hits API module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{}
	m.Base = modkit.NewBase("api.hits", "/hits", append(opts, modkit.WithRegister(func(r httpkit.Router) {
		p, ok := m.Built.Ports.(Ports)
		if !ok || p.Query == nil {
			panic("api.hits requires hits Ports")
		}
		hitshttp.Register(r, p.Query)
	}))...)
	return m
}
