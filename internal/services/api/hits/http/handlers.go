// Package http exposes hit log aggregates
package http

import (
	"net/http"
	"strconv"
	"time"

	"wordguard/internal/modkit/httpkit"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/services/hits/domain"
)

type handlers struct {
	q   domain.QueryPort
	now func() time.Time
}

// Register mounts the hits routes
func Register(r httpkit.Router, q domain.QueryPort) {
	h := &handlers{q: q, now: time.Now}
	httpkit.Get(r, "/top", h.top)
}

// TopResponse lists the most frequent keywords
type TopResponse struct {
	Since    string                `json:"since" example:"2026-10-01T00:00:00Z"`
	Keywords []domain.KeywordCount `json:"keywords"`
}

// @Summary Most frequent keywords in the hit log
// @Tags Hits
// @Produce json
// @Param window query string false "lookback as a Go duration" default(24h)
// @Param limit query int false "row limit" default(10)
// @Success 200 {object} TopResponse "ok"
// @Router /hits/top [get]
func (h *handlers) top(r *http.Request) (any, error) {
	q := r.URL.Query()

	window := 24 * time.Hour
	if s := q.Get("window"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, perr.WithField(perr.InvalidArgf("window must be a positive duration"), "window")
		}
		window = d
	}
	limit := 10
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, perr.WithField(perr.InvalidArgf("limit must be a positive integer"), "limit")
		}
		limit = n
	}

	since := h.now().Add(-window).UTC()
	rows, err := h.q.TopKeywords(r.Context(), since, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.KeywordCount{}
	}
	return TopResponse{Since: since.Format(time.RFC3339), Keywords: rows}, nil
}
