// Package module wires the detect workflow into the API using modkit
package module

import (
	"net/http"

	"harmwatch/internal/core/classifier"
	modkit "harmwatch/internal/modkit"
	"harmwatch/internal/modkit/httpkit"
	str "harmwatch/internal/platform/strings"
	"harmwatch/internal/services/detect/domain"
	dethttp "harmwatch/internal/services/detect/http"
	detsvc "harmwatch/internal/services/detect/service"
	extdom "harmwatch/internal/services/extract/domain"
	histdom "harmwatch/internal/services/history/domain"
)

// Ports declares the cross-module dependencies injected into detect
type Ports struct {
	Model     *classifier.Model
	Extractor extdom.ExtractorPort
	Writer    histdom.WriterPort
}

// Module implements the detect module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc *detsvc.Service
}

// New constructs the detect module; Ports must carry the model, extractor and writer
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("detect"), modkit.WithPrefix("/detect")}, opts...)...)

	in, _ := b.Ports.(Ports)
	svc := detsvc.New(in.Model, in.Extractor, in.Writer)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dethttp.Register(r, m.svc)
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

// Ports exposes the workflow service for cross-module wiring
func (m *Module) Ports() any { return domain.Ports{Service: m.svc} }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
