// Command wordguard-moderator consumes texts from Kafka and publishes a verdict per message
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wordguard/internal/modkit"
	"wordguard/internal/modkit/module"
	"wordguard/internal/modkit/repokit"
	"wordguard/internal/platform/config"
	"wordguard/internal/platform/logger"
	"wordguard/internal/platform/store"

	hitsmod "wordguard/internal/services/hits/module"
	kwmod "wordguard/internal/services/keywords/module"
	modmod "wordguard/internal/services/moderator/module"
	scanmod "wordguard/internal/services/scan/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opt := logger.FromEnv()
	opt.Component = "moderator"
	logger.Init(opt)
	l := logger.Get()

	root := config.New()
	st, err := store.Open(ctx, store.FromConfig(root, "moderator"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	deps := modkit.DepsFrom(root, st)
	deps.Log = l.With().Str("component", "moderator").Logger()

	hits := hitsmod.New(deps)
	hp := module.MustPortsOf[hitsmod.Ports](hits)

	// verdicts are tagged with the moderator as their hit source
	so := scanmod.FromConfig(root)
	so.Source = "moderator"
	scan, err := scanmod.NewWithOptions(deps, hp.Writer, so)
	if err != nil {
		l.Fatal().Err(err).Msg("scan module")
	}
	defer scan.Close()
	sp := module.MustPortsOf[scanmod.Ports](scan)

	keywords, err := kwmod.New(ctx, deps, sp.Engine)
	if err != nil {
		l.Fatal().Err(err).Msg("keywords module")
	}
	go func() {
		if err := keywords.Run(ctx); err != nil {
			l.Error().Err(err).Msg("keyword refresh stopped")
		}
	}()

	mod, err := modmod.New(ctx, deps, sp.Service)
	if err != nil {
		l.Fatal().Err(err).Msg("moderator module")
	}
	defer func() {
		if err := mod.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close broker clients")
		}
	}()

	if err := mod.Run(ctx); err != nil {
		l.Error().Err(err).Msg("moderator stopped")
	}
}
