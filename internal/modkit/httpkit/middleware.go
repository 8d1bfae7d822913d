package httpkit

import (
	"net/http"
	"time"

	"wordguard/internal/platform/config"
	phttp "wordguard/internal/platform/net/http"
	"wordguard/internal/platform/net/middleware"
)

// CommonStack is the middleware every versioned API router starts with. cfg supplies
// API_CORS_ORIGINS and API_TIMEOUT
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return append(middleware.Defaults(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: cfg.MayCSV("API_CORS_ORIGINS", nil)}),
		middleware.StripSlashes(),
		middleware.Throttle(cfg.MayInt("API_MAX_INFLIGHT", 256), cfg.MayInt("API_BACKLOG", 1024),
			cfg.MayDuration("API_BACKLOG_WAIT", 5*time.Second)),
	)
}

// Auth guards routes with p and writes failures as envelopes
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
