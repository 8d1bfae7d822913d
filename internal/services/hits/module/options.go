package module

import (
	"time"

	"wordguard/internal/platform/config"
)

// Options holds configuration settings for the hits module
type Options struct {
	Enabled      bool
	Table        string
	HardLimit    int
	Window       time.Duration
	EnsureSchema bool
}

// FromConfig reads CORE_HITS_* settings
func FromConfig(cfg config.Conf) Options {
	hf := cfg.Prefix("CORE_HITS_")
	return Options{
		Enabled:      hf.MayBool("ENABLED", false),
		Table:        hf.MayString("TABLE", "hits"),
		HardLimit:    hf.MayInt("HARD_LIMIT", 100),
		Window:       hf.MayDuration("WINDOW", 24*time.Hour),
		EnsureSchema: hf.MayBool("ENSURE_SCHEMA", true),
	}
}
