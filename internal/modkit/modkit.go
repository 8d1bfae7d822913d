package modkit

import (
	"net/http"

	"wordguard/internal/modkit/httpkit"
	"wordguard/internal/modkit/module"
)

// Module is the contract api.Mount drives
type Module = module.Module

// Base implements Module from a Built. API modules embed it and only supply Register
type Base struct {
	Built
}

// NewBase builds the Base for name, mounted at prefix unless an option overrides it
func NewBase(name, prefix string, opts ...Option) Base {
	return Base{Built: Build(append([]Option{WithName(name), WithPrefix(prefix)}, opts...)...)}
}

// Name returns the module name
func (b Base) Name() string { return b.Built.Name }

// Prefix returns the route prefix
func (b Base) Prefix() string { return b.Built.Prefix }

// Ports returns what WithPorts injected
func (b Base) Ports() any { return b.Built.Ports }

// Middlewares returns the module's own middleware
func (b Base) Middlewares() []func(http.Handler) http.Handler { return b.Mw }

// MountRoutes mounts Register under Prefix with the module middleware. An empty prefix mounts
// directly on r
func (b Base) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		b.Register(rr)
	}
	if b.Built.Prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(b.Built.Prefix, mount)
}
