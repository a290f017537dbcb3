// Package module wires report generation into the API using modkit
package module

import (
	"net/http"

	modkit "harmwatch/internal/modkit"
	"harmwatch/internal/modkit/httpkit"
	str "harmwatch/internal/platform/strings"
	histdom "harmwatch/internal/services/history/domain"
	"harmwatch/internal/services/report/domain"
	rephttp "harmwatch/internal/services/report/http"
	repsvc "harmwatch/internal/services/report/service"
)

// Ports declares the cross-module dependencies injected into report
type Ports struct {
	Reader histdom.ReaderPort
}

// Module implements the report module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc *repsvc.Service
}

// New constructs the report module; Ports must carry the history reader
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("report"), modkit.WithPrefix("/report")}, opts...)...)

	in, _ := b.Ports.(Ports)
	svc := repsvc.New(in.Reader)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rephttp.Register(r, m.svc)
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

// Ports exposes the report generator for cross-module wiring
func (m *Module) Ports() any { return domain.Ports{Generator: m.svc} }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
