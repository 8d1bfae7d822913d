package httpkit

import "wordguard/internal/platform/net/middleware"

// Protected mounts fn's routes in a group that requires p to authenticate the caller
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(g Router) {
		g.Use(Auth(p))
		fn(g)
	})
}
