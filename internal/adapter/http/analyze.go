package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"adpulse/internal/adapter/csvio"
	"adpulse/internal/core/domain"
)

// analyzeRequest is the JSON body for dataset submission.
type analyzeRequest struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

// handleAnalyze accepts a JSON dataset, runs the full analysis and
// returns the stored report. Malformed JSON or structurally invalid
// records produce HTTP 400; an empty dataset is valid and yields a
// report with empty sections.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.analyze(w, r, req.Campaigns)
}

// handleAnalyzeUpload accepts the raw CSV dataset as the request body
// and behaves exactly like handleAnalyze afterwards.
func (h *Handler) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	records, err := csvio.ReadCampaigns(r.Body)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.analyze(w, r, records)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request, records []domain.Campaign) {
	report, err := h.svc.Analyze(r.Context(), records)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
