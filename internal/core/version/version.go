// Package version reports build metadata stamped in with -ldflags
package version

import "runtime"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service" example:"wordguard-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit"  example:"4f2c1ab"`
	Date    string `json:"date"    example:"2026-10-01"`
	Go      string `json:"go"      example:"go1.25.1"`
}

// Set with -ldflags "-X wordguard/internal/core/version.version=v0.3.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build metadata for service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String is "<version> (<commit>)"
func String() string { return version + " (" + commit + ")" }
