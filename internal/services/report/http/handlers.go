// Package http provides http transport for report downloads
package http

import (
	stdhttp "net/http"
	"strconv"

	"harmwatch/internal/modkit/httpkit"
	phttp "harmwatch/internal/platform/net/http"
	"harmwatch/internal/services/report/domain"
)

// Register mounts the report endpoints; the router must already be protected
func Register(r httpkit.Router, g domain.GeneratorPort) {
	h := &handlers{gen: g}
	r.Get("/", h.download)
}

type handlers struct{ gen domain.GeneratorPort }

// @Summary Download the session's classification history as a PDF
// @Tags Report
// @Produce application/pdf
// @Success 200 {file} binary "pdf document"
// @Failure 404 {object} any "no predictions to report"
// @Router /report [get]
func (h *handlers) download(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	out, err := h.gen.Generate(r.Context(), httpkit.MustUser(r), httpkit.MustSession(r))
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=`+domain.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(out)
}
