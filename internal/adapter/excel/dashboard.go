// Package excel renders an analysis report as a spreadsheet dashboard:
// a Results sheet with the ranked table and a Dashboard sheet with
// charts over it. It consumes only the structured report.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"adpulse/internal/core/domain"
)

const (
	resultsSheet   = "Results"
	dashboardSheet = "Dashboard"
)

var resultHeaders = []string{
	"Rank", "Campaign", "Impressions", "Clicks", "Conversions",
	"Spend", "CTR %", "CPC", "CPA", "Conversion Rate %", "ROI %",
}

// WriteDashboard writes the workbook for a report to w.
func WriteDashboard(w io.Writer, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return err
	}
	if err := writeResults(f, report.Campaigns); err != nil {
		return err
	}
	if len(report.Campaigns) > 0 {
		if _, err := f.NewSheet(dashboardSheet); err != nil {
			return err
		}
		if err := addCharts(f, len(report.Campaigns)); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func writeResults(f *excelize.File, campaigns []domain.RankedCampaign) error {
	for i, h := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(resultsSheet, cell, h); err != nil {
			return err
		}
	}
	for r, c := range campaigns {
		values := []any{
			c.Rank, c.Name, c.Impressions, c.Clicks, c.Conversions,
			c.Spend.InexactFloat64(),
			metricCell(c.CTR), metricCell(c.CPC), metricCell(c.CPA),
			metricCell(c.ConversionRate), metricCell(c.ROI),
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// metricCell returns the rounded metric as a float, or nil so the cell
// stays blank and charts skip the point.
func metricCell(m domain.Metric) any {
	if !m.Valid {
		return nil
	}
	return m.Rounded().InexactFloat64()
}

func addCharts(f *excelize.File, rows int) error {
	names := seriesRange("B", rows)

	roi := &excelize.Chart{
		Type: excelize.Bar,
		Series: []excelize.ChartSeries{{
			Name:       "ROI %",
			Categories: names,
			Values:     seriesRange("K", rows),
		}},
		Title: []excelize.RichTextRun{{Text: "Return on Investment by Campaign"}},
	}
	if err := f.AddChart(dashboardSheet, "A1", roi); err != nil {
		return err
	}

	rates := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "CTR %", Categories: names, Values: seriesRange("G", rows)},
			{Name: "Conversion Rate %", Categories: names, Values: seriesRange("J", rows)},
		},
		Title: []excelize.RichTextRun{{Text: "Click-Through vs Conversion Rates"}},
	}
	if err := f.AddChart(dashboardSheet, "J1", rates); err != nil {
		return err
	}

	spend := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Spend", Categories: names, Values: seriesRange("F", rows)},
			{Name: "Conversions", Categories: names, Values: seriesRange("E", rows)},
		},
		Title: []excelize.RichTextRun{{Text: "Spend vs Conversions"}},
	}
	return f.AddChart(dashboardSheet, "A16", spend)
}

func seriesRange(col string, rows int) string {
	return fmt.Sprintf("%s!$%s$2:$%s$%d", resultsSheet, col, col, rows+1)
}
