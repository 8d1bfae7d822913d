// Package module is the module contract plus helpers to look up ports across modules
package module

import (
	phttp "wordguard/internal/platform/net/http"
)

// Module mounts routes and exposes ports for other modules
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
