// Package api assembles the HTTP API: worker modules that own the engine, the keyword
// catalog and the hit log, and the API modules that expose them under /api/v1
package api

import (
	"context"

	"wordguard/internal/modkit"
	"wordguard/internal/modkit/httpkit"
	"wordguard/internal/modkit/module"
	"wordguard/internal/modkit/swaggerkit"
	"wordguard/internal/platform/config"
	phttp "wordguard/internal/platform/net/http"
	"wordguard/internal/platform/store"

	apihits "wordguard/internal/services/api/hits/module"
	apikeywords "wordguard/internal/services/api/keywords/module"
	metamod "wordguard/internal/services/api/meta/module"
	apiscan "wordguard/internal/services/api/scan/module"

	// worker modules own the ports the API modules consume
	hitsmod "wordguard/internal/services/hits/module"
	kwmod "wordguard/internal/services/keywords/module"
	scanmod "wordguard/internal/services/scan/module"
)

// ServiceName labels health and version output
const ServiceName = "wordguard-api"

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	EnableSwagger  bool
	EnableProfiler bool
}

// App is the mounted API. Run keeps the keyword set fresh; Close releases workers
type App struct {
	scan     *scanmod.Module
	keywords *kwmod.Module
}

// Run blocks on the keyword watch and poll loops until ctx is done
func (a *App) Run(ctx context.Context) error { return a.keywords.Run(ctx) }

// Close releases the scan worker pool
func (a *App) Close() { a.scan.Close() }

// Mount builds every module, publishes the first keyword set and mounts the routes on r
func Mount(ctx context.Context, r phttp.Router, opt Options) (*App, error) {
	deps := modkit.DepsFrom(opt.Config, opt.Store)

	// worker modules first; their ports feed the API modules
	hits := hitsmod.New(deps)
	hp := module.MustPortsOf[hitsmod.Ports](hits)

	scan, err := scanmod.New(deps, hp.Writer)
	if err != nil {
		return nil, err
	}
	sp := module.MustPortsOf[scanmod.Ports](scan)

	keywords, err := kwmod.New(ctx, deps, sp.Engine)
	if err != nil {
		scan.Close()
		return nil, err
	}
	kp := module.MustPortsOf[kwmod.Ports](keywords)

	mods := []module.Module{
		hits,
		scan,
		keywords,
		metamod.New(deps, ServiceName, modkit.WithPorts(metamod.Ports{Engine: sp.Engine})),
		apiscan.New(deps, modkit.WithPorts(apiscan.Ports{Service: sp.Service})),
		apikeywords.New(deps, modkit.WithPorts(apikeywords.Ports{Service: kp.Service})),
		apihits.New(deps, modkit.WithPorts(apihits.Ports{Query: hp.Query})),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(deps.Cfg), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().Int("modules", len(mods)).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
	return &App{scan: scan, keywords: keywords}, nil
}
