// Package http provides http transport for the detect workflow
package http

import (
	stdhttp "net/http"

	"harmwatch/internal/modkit/httpkit"
	"harmwatch/internal/services/detect/domain"
)

// Register mounts the detect endpoints; the router must already be protected
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TextInput](r, "/text", h.text)
	httpkit.PostJSON[domain.URLInput](r, "/url", h.url)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Classify a block of text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text to classify"
// @Success 200 {object} domain.Result "created record"
// @Router /detect/text [post]
func (h *handlers) text(r *stdhttp.Request, in domain.TextInput) (any, error) {
	rec, err := h.svc.SubmitText(r.Context(), httpkit.MustUser(r), httpkit.MustSession(r), in.Text)
	if err != nil {
		return nil, err
	}
	return domain.Result{Record: rec}, nil
}

// @Summary Classify the paragraph text of a web page
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.URLInput true "Page to classify"
// @Success 200 {object} domain.Result "created record"
// @Router /detect/url [post]
func (h *handlers) url(r *stdhttp.Request, in domain.URLInput) (any, error) {
	rec, err := h.svc.SubmitURL(r.Context(), httpkit.MustUser(r), httpkit.MustSession(r), in.URL)
	if err != nil {
		return nil, err
	}
	return domain.Result{Record: rec}, nil
}
