// Package http exposes the keyword catalog. Writes and reloads need a bearer token
package http

import (
	"net/http"

	"wordguard/internal/modkit/httpkit"
	"wordguard/internal/platform/net/middleware"
	"wordguard/internal/services/keywords/domain"
)

type handlers struct {
	svc domain.ServicePort
}

// Register mounts the catalog routes; auth guards the mutating ones
func Register(r httpkit.Router, svc domain.ServicePort, auth middleware.AuthPort) {
	h := &handlers{svc: svc}

	httpkit.Get(r, "/", h.list)
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON(pr, "/", h.add)
		httpkit.DeleteJSON(pr, "/", h.remove)
		httpkit.Post(pr, "/reload", h.reload)
	})
}

// @Summary List stored keywords
// @Tags Keywords
// @Produce json
// @Success 200 {array} domain.Keyword "ok"
// @Router /keywords [get]
func (h *handlers) list(r *http.Request) (any, error) {
	ks, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	if ks == nil {
		ks = []domain.Keyword{}
	}
	return ks, nil
}

// @Summary Add or regroup a keyword
// @Tags Keywords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.AddInput true "keyword"
// @Success 201 {object} domain.Keyword "created"
// @Router /keywords [post]
func (h *handlers) add(r *http.Request, in domain.AddInput) (any, error) {
	k, err := h.svc.Add(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(k), nil
}

// @Summary Remove a keyword
// @Tags Keywords
// @Accept json
// @Security BearerAuth
// @Param payload body domain.RemoveInput true "keyword"
// @Success 204 "removed"
// @Router /keywords [delete]
func (h *handlers) remove(r *http.Request, in domain.RemoveInput) (any, error) {
	if err := h.svc.Remove(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Reload and publish the keyword set from its source
// @Tags Keywords
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ReloadResult "ok"
// @Router /keywords/reload [post]
func (h *handlers) reload(r *http.Request) (any, error) {
	return h.svc.Reload(r.Context())
}
