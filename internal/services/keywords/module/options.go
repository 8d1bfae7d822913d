package module

import (
	"time"

	"wordguard/internal/core/detector"
	"wordguard/internal/platform/config"
	"wordguard/internal/services/keywords/source"
)

// Options controls where keywords come from and how they are refreshed
type Options struct {
	Source       source.Config
	JumpLength   int
	Watch        bool
	Debounce     time.Duration
	Poll         time.Duration
	EnsureSchema bool
}

// FromConfig reads CORE_KEYWORDS_* and CORE_SCAN_JUMP_LENGTH
func FromConfig(cfg config.Conf) Options {
	kc := cfg.Prefix("CORE_KEYWORDS_")
	return Options{
		Source: source.Config{
			Kind:    kc.MayEnum("SOURCE", source.KindEmbedded, source.KindEmbedded, source.KindFile, source.KindPG, source.KindURL),
			File:    kc.MayString("FILE", ""),
			URL:     kc.MayString("URL", ""),
			Timeout: kc.MayDuration("URL_TIMEOUT", 10*time.Second),
		},
		JumpLength:   cfg.Prefix("CORE_SCAN_").MayInt("JUMP_LENGTH", detector.DefaultJumpLength),
		Watch:        kc.MayBool("WATCH", false),
		Debounce:     kc.MayDuration("WATCH_DEBOUNCE", 250*time.Millisecond),
		Poll:         time.Duration(kc.MayInt("POLL_SECONDS", 0)) * time.Second,
		EnsureSchema: kc.MayBool("ENSURE_SCHEMA", true),
	}
}
