package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpulse/internal/adapter/csvio"
	"adpulse/internal/adapter/excel"
	"adpulse/internal/core/domain"
)

// handleGetReport returns a stored report as JSON. Invalid ids produce
// HTTP 400, unknown ids HTTP 404.
func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleListReports returns summaries of recent reports. The optional
// `limit` query parameter caps the result.
func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	summaries, err := h.svc.ListReports(r.Context(), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(summaries); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleExportResults streams the ranked results of a report as CSV.
func (h *Handler) handleExportResults(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ID.String()+"_results.csv"))
	if err := csvio.WriteResults(w, report.Campaigns); err != nil {
		h.logger.Error("write results error", slog.Any("error", err))
	}
}

// handleExportDashboard streams the dashboard workbook of a report.
func (h *Handler) handleExportDashboard(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ID.String()+"_dashboard.xlsx"))
	if err := excel.WriteDashboard(w, report); err != nil {
		h.logger.Error("write dashboard error", slog.Any("error", err))
	}
}

func (h *Handler) loadReport(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid report id", http.StatusBadRequest)
		return nil, false
	}
	report, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return nil, false
	}
	return report, true
}
