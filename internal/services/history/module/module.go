// Package module wires the history store into the app using modkit
package module

import (
	"net/http"

	modkit "harmwatch/internal/modkit"
	"harmwatch/internal/modkit/httpkit"
	str "harmwatch/internal/platform/strings"
	"harmwatch/internal/services/history/domain"
	histsvc "harmwatch/internal/services/history/service"
)

// Module implements the history module. It mounts no routes of its own; other
// modules consume its reader/writer/purger ports
type Module struct {
	deps  modkit.Deps
	name  string
	ports domain.Ports
}

// New constructs the history module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("history")}, opts...)...)

	svc := histsvc.New()
	return &Module{
		deps: deps,
		name: b.Name,
		ports: domain.Ports{
			Writer: svc,
			Reader: svc,
			Purger: svc,
		},
	}
}

// MountRoutes is a no-op; history has no transport surface
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports exposes the history ports for cross-module wiring
func (m *Module) Ports() any { return m.ports }

// Middlewares returns no middleware; kept for interface symmetry
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }
