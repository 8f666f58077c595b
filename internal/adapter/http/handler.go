package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"

	"pubtag/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a ScriptGenerator to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.ScriptGenerator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// ScriptGenerator implementation, a logger and the metrics registry backing
// the /metrics endpoint.
func NewHandler(svc port.ScriptGenerator, logger *slog.Logger, reg *prometheus.Registry) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/orders/{orderID}/scripts/generate", h.handleGenerateForOrder)
		r.Post("/orders/{orderID}/scripts/refresh", h.handleRefresh)
		r.Post("/creatives/{creativeID}/scripts/generate", h.handleGenerateForAsset)
		r.Get("/orders/{orderID}/scripts", h.handleListScripts)
		r.Get("/orders/{orderID}/scripts/export", h.handleExport)
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
