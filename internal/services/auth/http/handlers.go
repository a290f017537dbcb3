// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"harmwatch/internal/modkit/httpkit"
	"harmwatch/internal/services/auth/domain"
)

// Register mounts the open auth endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
}

// RegisterProtected mounts endpoints that require a live session
func RegisterProtected(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/logout", h.logout)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Log in with identity and secret
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.LoginResponse "ok"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	sess, err := h.svc.Login(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.LoginResponse{Token: sess.Token, Identity: sess.Identity}, nil
}

// @Summary Log out and discard the session history
// @Tags Auth
// @Produce json
// @Success 200 {object} any "ok"
// @Router /auth/logout [post]
func (h *handlers) logout(r *stdhttp.Request) (any, error) {
	sid := httpkit.MustSession(r)
	if err := h.svc.Logout(r.Context(), sid); err != nil {
		return nil, err
	}
	return map[string]any{"logged_out": true}, nil
}
