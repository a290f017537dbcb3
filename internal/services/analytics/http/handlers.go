// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"harmwatch/internal/modkit/httpkit"
	"harmwatch/internal/services/analytics/domain"
)

// Register mounts the analytics endpoints; the router must already be protected
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/summary", h.summary)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Aggregate view of the session's classification history
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.Summary "summary"
// @Router /analytics/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summarize(r.Context(), httpkit.MustUser(r), httpkit.MustSession(r))
}
