package domain

import (
	"context"

	"wordguard/internal/core/detector"
)

// ServicePort is the scan surface shared by the HTTP API and the moderator
type ServicePort interface {
	Check(ctx context.Context, in ScanInput) (CheckResult, error)
	First(ctx context.Context, in ScanInput) (FirstResult, error)
	All(ctx context.Context, in ScanInput) (AllResult, error)
	Mask(ctx context.Context, in ReplaceInput) (ReplaceResult, error)
	Batch(ctx context.Context, in BatchInput) (BatchResult, error)
	Moderate(ctx context.Context, in ReplaceInput) (ModerateResult, error)
}

// EnginePort exposes the shared engine for publishing and stats
type EnginePort interface {
	Configure(keywords []string, jumpLength int) error
	Stats() detector.Stats
	Keywords() []string
}
