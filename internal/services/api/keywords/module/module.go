// Package module mounts the keyword catalog API
package module

import (
	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	kwhttp "wordguard/internal/services/api/keywords/http"
	"wordguard/internal/services/keywords/domain"
)

// Ports are injected from the keywords worker module with modkit.WithPorts
type Ports struct {
	Service domain.ServicePort
}

// Module serves /keywords
type Module struct {
	modkit.Base
}

// New constructs the keywords API module. Admin tokens come from API_ADMIN_TOKENS;
// with none set every write is refused
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	auth := httpkit.StaticTokens("admin", deps.Cfg.Prefix("API_").MayCSV("ADMIN_TOKENS", nil)...)
	m := &Module{}
	m.Base = modkit.NewBase("api.keywords", "/keywords", append(opts, modkit.WithRegister(func(r httpkit.Router) {
		p, ok := m.Built.Ports.(Ports)
		if !ok || p.Service == nil {
			panic("api.keywords requires keywords Ports")
		}
		kwhttp.Register(r, p.Service, auth)
	}))...)
	return m
}
