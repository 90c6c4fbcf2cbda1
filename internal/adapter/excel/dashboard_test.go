package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"adpulse/internal/adapter/usecase"
	"adpulse/internal/core/domain"
)

func testReport(t *testing.T, records []domain.Campaign) *domain.Report {
	t.Helper()
	ranked := usecase.Rank(usecase.ComputeMetrics(records))
	return &domain.Report{
		ID:              uuid.New(),
		GeneratedAt:     time.Now().UTC(),
		Campaigns:       ranked,
		Recommendations: usecase.Classify(ranked),
	}
}

func TestWriteDashboard(t *testing.T) {
	report := testReport(t, []domain.Campaign{
		{Name: "A", Impressions: 1000, Clicks: 100, Conversions: 10, Spend: decimal.NewFromInt(200)},
		{Name: "B", Impressions: 1000, Clicks: 50, Conversions: 1, Spend: decimal.NewFromInt(300)},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Results")
	require.Contains(t, f.GetSheetList(), "Dashboard")

	name, err := f.GetCellValue("Results", "B2")
	require.NoError(t, err)
	require.Equal(t, "A", name)

	roi, err := f.GetCellValue("Results", "K2")
	require.NoError(t, err)
	require.Equal(t, "150", roi)

	rank, err := f.GetCellValue("Results", "A3")
	require.NoError(t, err)
	require.Equal(t, "2", rank)
}

func TestWriteDashboardEmptyReport(t *testing.T) {
	report := testReport(t, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Results")
	require.NotContains(t, f.GetSheetList(), "Dashboard")
}

func TestWriteDashboardBlankUndefinedMetrics(t *testing.T) {
	report := testReport(t, []domain.Campaign{
		{Name: "dead", Spend: decimal.Zero},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	ctr, err := f.GetCellValue("Results", "G2")
	require.NoError(t, err)
	require.Empty(t, ctr)
}
