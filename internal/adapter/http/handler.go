package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpulse/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP
// adapter: it drives the Analyzer port and renders its structured
// results as JSON, CSV or a spreadsheet dashboard.
type Handler struct {
	svc    port.Analyzer
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.Analyzer, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", h.handleAnalyze)
		r.Post("/analyze/upload", h.handleAnalyzeUpload)
		r.Get("/reports", h.handleListReports)
		r.Get("/reports/{id}", h.handleGetReport)
		r.Get("/reports/{id}/results.csv", h.handleExportResults)
		r.Get("/reports/{id}/dashboard.xlsx", h.handleExportDashboard)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// respondError maps domain errors onto HTTP status codes. Input problems
// are the caller's fault, unknown report ids are 404, everything else is
// logged and hidden behind a generic 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var inputErr *port.InputError
	switch {
	case errors.As(err, &inputErr):
		http.Error(w, inputErr.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrReportNotFound):
		http.Error(w, "report not found", http.StatusNotFound)
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
