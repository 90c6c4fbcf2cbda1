package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adpulse/internal/adapter/usecase"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

func decimalFromInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// fakeAnalyzer runs the real pure pipeline but keeps reports in memory.
type fakeAnalyzer struct {
	reports map[uuid.UUID]*domain.Report
}

func newFakeAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{reports: map[uuid.UUID]*domain.Report{}}
}

func (f *fakeAnalyzer) Analyze(_ context.Context, records []domain.Campaign) (*domain.Report, error) {
	report, err := usecase.BuildReport(records)
	if err != nil {
		return nil, err
	}
	f.reports[report.ID] = report
	return report, nil
}

func (f *fakeAnalyzer) GetReport(_ context.Context, id uuid.UUID) (*domain.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, port.ErrReportNotFound
	}
	return report, nil
}

func (f *fakeAnalyzer) ListReports(_ context.Context, limit int) ([]port.ReportSummary, error) {
	out := []port.ReportSummary{}
	for _, r := range f.reports {
		if len(out) == limit {
			break
		}
		out = append(out, port.ReportSummary{ID: r.ID, GeneratedAt: time.Now(), CampaignCount: len(r.Campaigns)})
	}
	return out, nil
}

func newTestHandler() (*Handler, *fakeAnalyzer) {
	fake := newFakeAnalyzer()
	return NewHandler(fake, slog.New(slog.DiscardHandler)), fake
}

const analyzeBody = `{"campaigns":[
	{"campaign_name":"A","impressions":1000,"clicks":100,"conversions":10,"spend":"200"},
	{"campaign_name":"B","impressions":1000,"clicks":50,"conversions":1,"spend":"300"}
]}`

func TestHandleAnalyze(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(analyzeBody))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Campaigns, 2)
	require.Equal(t, "A", report.Campaigns[0].Name)
	require.Equal(t, 1, report.Campaigns[0].Rank)
}

func TestHandleAnalyzeInvalidRecord(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"campaigns":[{"campaign_name":"","impressions":1,"clicks":0,"conversions":0,"spend":"0"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "campaign_name")
}

func TestHandleAnalyzeUpload(t *testing.T) {
	h, _ := newTestHandler()

	csv := "campaign_name,impressions,clicks,conversions,spend\nA,1000,100,10,200\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/upload", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleGetReport(t *testing.T) {
	h, fake := newTestHandler()
	report, err := fake.Analyze(context.Background(), []domain.Campaign{
		{Name: "A", Impressions: 10, Clicks: 1, Conversions: 1, Spend: decimalFromInt(5)},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+report.ID.String(), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+uuid.NewString(), nil)
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportResults(t *testing.T) {
	h, fake := newTestHandler()
	report, err := fake.Analyze(context.Background(), []domain.Campaign{
		{Name: "A", Impressions: 1000, Clicks: 100, Conversions: 10, Spend: decimalFromInt(200)},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+report.ID.String()+"/results.csv", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "1,A,1000,100,10,200")
}
