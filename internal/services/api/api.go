// Package api provides the HTTP API for the application
package api

import (
	"harmwatch/internal/core/classifier"
	"harmwatch/internal/platform/config"
	"harmwatch/internal/platform/logger"
	phttp "harmwatch/internal/platform/net/http"

	"harmwatch/internal/modkit"
	"harmwatch/internal/modkit/httpkit"
	"harmwatch/internal/modkit/module"
	"harmwatch/internal/modkit/swaggerkit"

	analyticsmod "harmwatch/internal/services/analytics/module"
	authdom "harmwatch/internal/services/auth/domain"
	authmod "harmwatch/internal/services/auth/module"
	detectmod "harmwatch/internal/services/detect/module"
	extdom "harmwatch/internal/services/extract/domain"
	extractmod "harmwatch/internal/services/extract/module"
	histdom "harmwatch/internal/services/history/domain"
	histmod "harmwatch/internal/services/history/module"
	metamod "harmwatch/internal/services/meta/module"
	reportmod "harmwatch/internal/services/report/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Model          *classifier.Model
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
	}

	// history first; nearly everything else consumes its ports
	history := histmod.New(deps)
	hist := module.MustPortsOf[histdom.Ports](history)

	// extractor feeds the URL submission path
	extract := extractmod.New(deps)
	extractor := module.MustPortsOf[extdom.Ports](extract).Extractor

	// auth owns sessions and tears down history on logout
	auth := authmod.New(deps, modkit.WithPorts(authmod.Ports{
		Purger: hist.Purger,
	}))
	parser := module.MustPortsOf[authdom.Ports](auth).Parser

	// everything past the gate shares one bearer-auth middleware
	guard := httpkit.Auth(httpkit.NewPortFunc(parser.ParseToken))

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Model: opt.Model})),
		history,
		extract,
		auth,
		detectmod.New(deps,
			modkit.WithPorts(detectmod.Ports{
				Model:     opt.Model,
				Extractor: extractor,
				Writer:    hist.Writer,
			}),
			modkit.WithMiddlewares(guard),
		),
		analyticsmod.New(deps,
			modkit.WithPorts(analyticsmod.Ports{Reader: hist.Reader}),
			modkit.WithMiddlewares(guard),
		),
		reportmod.New(deps,
			modkit.WithPorts(reportmod.Ports{Reader: hist.Reader}),
			modkit.WithMiddlewares(guard),
		),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
