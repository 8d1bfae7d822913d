// @title         wordguard API
// @version       1.0
// @description   Banned keyword detection and masking.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wordguard/internal/modkit/repokit"
	"wordguard/internal/platform/config"
	"wordguard/internal/platform/logger"
	phttp "wordguard/internal/platform/net/http"
	"wordguard/internal/platform/store"

	"wordguard/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opt := logger.FromEnv()
	opt.Component = "api"
	logger.Init(opt)
	l := logger.Get()

	root := config.New()

	// PG_* and CH_* are optional; an unset address keeps that backend off
	st, err := store.Open(ctx, store.FromConfig(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// reads API_PORT and API_SHUTDOWN_GRACE
	srv := phttp.NewServer(root)

	app, err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		EnableSwagger:  root.MayBool("API_SWAGGER", true),
		EnableProfiler: root.MayBool("API_PROFILER", false),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api.Mount failed")
	}
	defer app.Close()

	go func() {
		if err := app.Run(ctx); err != nil {
			l.Error().Err(err).Msg("keyword refresh stopped")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
