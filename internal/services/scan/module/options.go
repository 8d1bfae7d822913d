package module

import (
	"wordguard/internal/core/detector"
	"wordguard/internal/platform/config"
)

// Options controls the shared engine and scan limits
type Options struct {
	JumpLength int
	Mask       rune
	Workers    int
	MaxText    int
	RecordHits bool
	Source     string
}

// FromConfig reads CORE_SCAN_* settings
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("CORE_SCAN_")
	return Options{
		JumpLength: sc.MayInt("JUMP_LENGTH", detector.DefaultJumpLength),
		Mask:       sc.MayRune("MASK", detector.DefaultMask),
		Workers:    sc.MayInt("WORKERS", 4),
		MaxText:    sc.MayInt("MAX_TEXT", 65536),
		RecordHits: sc.MayBool("RECORD_HITS", true),
		Source:     sc.MayString("HIT_SOURCE", "api"),
	}
}
