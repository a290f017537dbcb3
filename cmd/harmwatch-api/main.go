// @title         Harmwatch API
// @version       0.1.0
// @description   Session-scoped harmful text classification, analytics and reporting

package main

import (
	"context"

	"harmwatch/internal/core/classifier"
	"harmwatch/internal/platform/config"
	"harmwatch/internal/platform/logger"
	phttp "harmwatch/internal/platform/net/http"

	"harmwatch/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// the classifier artifacts are part of the binary; a broken model means
	// the service refuses to start rather than serving unclassifiable input
	model, err := classifier.Load()
	if err != nil {
		l.Panic().Err(err).Msg("classifier.Load failed")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Model:          model,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
