// Package module mounts the scan API
package module

import (
	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	scanhttp "wordguard/internal/services/api/scan/http"
	"wordguard/internal/services/scan/domain"
)

// Ports are injected from the scan worker module with modkit.WithPorts
type Ports struct {
	Service domain.ServicePort
}

// Module serves /scan
type Module struct {
	modkit.Base
}

// New constructs the scan API module. It panics without a Ports injection
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	maxBody := int64(deps.Cfg.Prefix("API_").MayInt("MAX_BODY_BYTES", 1<<20))
	m := &Module{}
	m.Base = modkit.NewBase("api.scan", "/scan", append(opts, modkit.WithRegister(func(r httpkit.Router) {
		p, ok := m.Built.Ports.(Ports)
		if !ok || p.Service == nil {
			panic("api.scan requires scan Ports")
		}
		scanhttp.Register(r, p.Service, maxBody)
	}))...)
	return m
}
