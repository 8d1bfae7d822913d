// Package domain defines the moderation stream messages and broker ports
package domain

import (
	"context"
	"time"

	"wordguard/internal/core/detector"

	"github.com/segmentio/kafka-go"
)

// Message is one text to moderate, read from the input topic
type Message struct {
	ID      string `json:"id"`
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

// Verdict is written to the output topic keyed by the message id
type Verdict struct {
	ID        string           `json:"id"`
	VerdictID string           `json:"verdict_id"`
	Flagged   bool             `json:"flagged"`
	Masked    string           `json:"masked"`
	Matches   []detector.Match `json:"matches"`
	Channel   string           `json:"channel,omitempty"`
	At        time.Time        `json:"at"`
}

// Reader is the consumer side; *kafka.Reader satisfies it
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Writer is the producer side; *kafka.Writer satisfies it
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
