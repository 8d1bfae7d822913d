package module

import (
	"time"

	"wordguard/internal/platform/config"
)

// Options configures the broker side of the moderator
type Options struct {
	Brokers      []string
	InTopic      string
	OutTopic     string
	GroupID      string
	Workers      int
	Mask         string
	CreateTopics bool
	Partitions   int
	BatchSize    int
	WriteTimeout time.Duration
	WriteRetries int
	RetryBackoff time.Duration
}

// FromConfig reads MODERATOR_* settings
func FromConfig(cfg config.Conf) Options {
	mc := cfg.Prefix("MODERATOR_")
	return Options{
		Brokers:      mc.MayCSV("BROKERS", []string{"localhost:9092"}),
		InTopic:      mc.MayString("IN_TOPIC", "wordguard.texts"),
		OutTopic:     mc.MayString("OUT_TOPIC", "wordguard.verdicts"),
		GroupID:      mc.MayString("GROUP_ID", "wordguard-moderator"),
		Workers:      mc.MayInt("WORKERS", 8),
		Mask:         string(cfg.Prefix("CORE_SCAN_").MayRune("MASK", '*')),
		CreateTopics: mc.MayBool("CREATE_TOPICS", false),
		Partitions:   mc.MayInt("PARTITIONS", 1),
		BatchSize:    mc.MayInt("BATCH_SIZE", 100),
		WriteTimeout: mc.MayDuration("WRITE_TIMEOUT", 10*time.Second),
		WriteRetries: mc.MayInt("WRITE_RETRIES", 5),
		RetryBackoff: mc.MayDuration("RETRY_BACKOFF", 250*time.Millisecond),
	}
}
