// Package http exposes the scan service over JSON
package http

import (
	"net/http"

	"wordguard/internal/modkit/httpkit"
	"wordguard/internal/services/scan/domain"
)

type handlers struct {
	svc  domain.ServicePort
	opts httpkit.JSONOptions
}

// Register mounts the scan routes. maxBody caps request bodies, 0 for the default
func Register(r httpkit.Router, svc domain.ServicePort, maxBody int64) {
	h := &handlers{svc: svc, opts: httpkit.JSONOptions{MaxBytes: maxBody}}

	httpkit.PostJSON(r, "/contains", h.contains, h.opts)
	httpkit.PostJSON(r, "/first", h.first, h.opts)
	httpkit.PostJSON(r, "/all", h.all, h.opts)
	httpkit.PostJSON(r, "/replace", h.replace, h.opts)
	httpkit.PostJSON(r, "/moderate", h.moderate, h.opts)
	httpkit.PostJSON(r, "/batch", h.batch, h.opts)
}

// @Summary Report whether text holds any banned keyword
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.ScanInput true "text to scan"
// @Success 200 {object} domain.CheckResult "ok"
// @Router /scan/contains [post]
func (h *handlers) contains(r *http.Request, in domain.ScanInput) (any, error) {
	return h.svc.Check(r.Context(), in)
}

// @Summary First banned keyword in scan order
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.ScanInput true "text to scan"
// @Success 200 {object} domain.FirstResult "ok"
// @Router /scan/first [post]
func (h *handlers) first(r *http.Request, in domain.ScanInput) (any, error) {
	return h.svc.First(r.Context(), in)
}

// @Summary Every banned keyword occurrence
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.ScanInput true "text to scan"
// @Success 200 {object} domain.AllResult "ok"
// @Router /scan/all [post]
func (h *handlers) all(r *http.Request, in domain.ScanInput) (any, error) {
	return h.svc.All(r.Context(), in)
}

// @Summary Mask every banned keyword occurrence
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.ReplaceInput true "text and optional mask"
// @Success 200 {object} domain.ReplaceResult "ok"
// @Router /scan/replace [post]
func (h *handlers) replace(r *http.Request, in domain.ReplaceInput) (any, error) {
	return h.svc.Mask(r.Context(), in)
}

// @Summary Matches and masked text in one verdict
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.ReplaceInput true "text and optional mask"
// @Success 200 {object} domain.ModerateResult "ok"
// @Router /scan/moderate [post]
func (h *handlers) moderate(r *http.Request, in domain.ReplaceInput) (any, error) {
	return h.svc.Moderate(r.Context(), in)
}

// @Summary Scan many texts in one mode
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "texts and mode"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /scan/batch [post]
func (h *handlers) batch(r *http.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}
