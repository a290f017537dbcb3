// Package module wires the content extractor into the app using modkit
package module

import (
	"net/http"

	modkit "harmwatch/internal/modkit"
	"harmwatch/internal/modkit/httpkit"
	str "harmwatch/internal/platform/strings"
	"harmwatch/internal/services/extract/domain"
	extsvc "harmwatch/internal/services/extract/service"
)

// Module implements the extract module. No routes; the detect workflow consumes
// its extractor port
type Module struct {
	deps  modkit.Deps
	name  string
	ports domain.Ports
}

// New constructs the extract module, reading SERVICE_EXTRACT_* config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("extract")}, opts...)...)

	svc := extsvc.FromConfig(deps.Cfg.Prefix("SERVICE_EXTRACT_"))
	return &Module{
		deps:  deps,
		name:  b.Name,
		ports: domain.Ports{Extractor: svc},
	}
}

// MountRoutes is a no-op; extraction has no transport surface
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports exposes the extractor port for cross-module wiring
func (m *Module) Ports() any { return m.ports }

// Middlewares returns no middleware; kept for interface symmetry
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }
