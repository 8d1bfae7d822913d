package domain

import (
	"context"

	"wordguard/internal/core/detector"
)

// ReaderPort lists stored keywords
type ReaderPort interface {
	List(ctx context.Context) ([]Keyword, error)
}

// WriterPort changes stored keywords
type WriterPort interface {
	Add(ctx context.Context, in AddInput) (Keyword, error)
	Remove(ctx context.Context, in RemoveInput) error
}

// SourcePort yields the raw keyword set to publish
type SourcePort interface {
	Name() string
	Load(ctx context.Context) ([]string, error)
}

// EnginePort is the matcher a reload publishes to; *detector.Engine satisfies it
type EnginePort interface {
	Configure(keywords []string, jumpLength int) error
	Stats() detector.Stats
}

// ServicePort is the keyword workflow surface
type ServicePort interface {
	ReaderPort
	WriterPort
	Reload(ctx context.Context) (ReloadResult, error)
}
