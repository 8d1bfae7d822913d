package modkit

import (
	"net/http"

	"wordguard/internal/modkit/httpkit"
)

// Built is the resolved form of a module's options
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies opts. Register defaults to a no-op
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}
