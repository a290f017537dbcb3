// Package module wires auth into the API using modkit
package module

import (
	"net/http"

	modkit "harmwatch/internal/modkit"
	"harmwatch/internal/modkit/httpkit"
	str "harmwatch/internal/platform/strings"
	"harmwatch/internal/services/auth/domain"
	authhttp "harmwatch/internal/services/auth/http"
	authsvc "harmwatch/internal/services/auth/service"
	histdom "harmwatch/internal/services/history/domain"
)

// Ports declares the cross-module dependencies injected into auth
type Ports struct {
	Purger histdom.PurgerPort // required; logout tears down the session history
}

// Module implements the auth module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc *authsvc.Service
}

// New constructs the auth module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	in, _ := b.Ports.(Ports)
	verifier := authsvc.VerifierFromConfig(deps.Cfg.Prefix("SERVICE_AUTH_"))
	svc := authsvc.New(verifier, in.Purger)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		authhttp.Register(r, m.svc)
		httpkit.Protected(r, httpkit.NewPortFunc(m.svc.ParseToken), func(pr httpkit.Router) {
			authhttp.RegisterProtected(pr, m.svc)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports exposes the auth ports for cross-module wiring
func (m *Module) Ports() any {
	return domain.Ports{Service: m.svc, Parser: m.svc}
}

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
