package modkit

import (
	"net/http"

	"wordguard/internal/modkit/httpkit"
)

// Option adjusts how a module is built
type Option func(*Built)

// WithName names the module in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module-local middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts injects the ports another module exposes; the importing module owns the type
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithRegister adds fn to the route registration chain
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) {
		prev := b.Register
		b.Register = func(r httpkit.Router) {
			if prev != nil {
				prev(r)
			}
			fn(r)
		}
	}
}
