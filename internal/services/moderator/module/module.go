// Package module wires the moderator to Kafka
package module

import (
	"context"
	"errors"
	"net"
	"strconv"

	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/services/moderator/domain"
	"wordguard/internal/services/moderator/service"
	scandom "wordguard/internal/services/scan/domain"

	"github.com/segmentio/kafka-go"
)

// Ports exposed by the moderator module
type Ports struct {
	Moderator *service.Moderator
}

// Module owns the Kafka reader and writer
type Module struct {
	deps  modkit.Deps
	opts  Options
	r     domain.Reader
	w     domain.Writer
	mod   *service.Moderator
	ports Ports
}

// New builds the moderator from config over scan
func New(ctx context.Context, deps modkit.Deps, scan scandom.ServicePort) (*Module, error) {
	return NewWithOptions(ctx, deps, scan, FromConfig(deps.Cfg))
}

// NewWithOptions is New with explicit options. Topics are created first when asked
func NewWithOptions(ctx context.Context, deps modkit.Deps, scan scandom.ServicePort, opts Options) (*Module, error) {
	if len(opts.Brokers) == 0 {
		return nil, perr.WithField(perr.InvalidArgf("moderator: no brokers"), "MODERATOR_BROKERS")
	}
	if opts.InTopic == "" || opts.OutTopic == "" || opts.InTopic == opts.OutTopic {
		return nil, perr.InvalidArgf("moderator: input and output topics must be set and differ")
	}
	if opts.CreateTopics {
		if err := EnsureTopics(ctx, opts.Brokers[0], opts.Partitions, opts.InTopic, opts.OutTopic); err != nil {
			return nil, err
		}
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  opts.Brokers,
		Topic:    opts.InTopic,
		GroupID:  opts.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	w := &kafka.Writer{
		Addr:         kafka.TCP(opts.Brokers...),
		Topic:        opts.OutTopic,
		Balancer:     &kafka.Hash{},
		BatchSize:    opts.BatchSize,
		RequiredAcks: kafka.RequireOne,
	}
	return NewWithClients(deps, scan, opts, r, w), nil
}

// NewWithClients builds the module over existing broker clients
func NewWithClients(deps modkit.Deps, scan scandom.ServicePort, opts Options, r domain.Reader, w domain.Writer) *Module {
	mod := service.New(r, w, scan, service.Config{
		Workers:      opts.Workers,
		Mask:         opts.Mask,
		WriteTimeout: opts.WriteTimeout,
		WriteRetries: opts.WriteRetries,
		RetryBackoff: opts.RetryBackoff,
	})
	return &Module{deps: deps, opts: opts, r: r, w: w, mod: mod, ports: Ports{Moderator: mod}}
}

// Run consumes until ctx is done
func (m *Module) Run(ctx context.Context) error {
	m.deps.Log.Info().
		Strs("brokers", m.opts.Brokers).
		Str("in", m.opts.InTopic).
		Str("out", m.opts.OutTopic).
		Str("group", m.opts.GroupID).
		Msg("moderator starting")
	return m.mod.Run(ctx)
}

// Close closes the reader and flushes the writer
func (m *Module) Close() error {
	return errors.Join(m.r.Close(), m.w.Close())
}

// EnsureTopics creates topics through the cluster controller. Existing topics are left alone
func EnsureTopics(ctx context.Context, broker string, partitions int, topics ...string) error {
	if partitions <= 0 {
		partitions = 1
	}
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "moderator: dial %s", broker)
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "moderator: find controller")
	}
	cc, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "moderator: dial controller")
	}
	defer cc.Close()

	cfgs := make([]kafka.TopicConfig, 0, len(topics))
	for _, t := range topics {
		cfgs = append(cfgs, kafka.TopicConfig{Topic: t, NumPartitions: partitions, ReplicationFactor: 1})
	}
	if err := cc.CreateTopics(cfgs...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "moderator: create topics")
	}
	return nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "moderator" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
