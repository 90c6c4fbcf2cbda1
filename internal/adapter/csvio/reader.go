// Package csvio reads raw campaign datasets from CSV and writes ranked
// analysis results back out. It is a peripheral adapter: the core only
// ever sees the structured records and the structured report.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

var requiredColumns = []string{"campaign_name", "impressions", "clicks", "conversions", "spend"}

// ReadCampaigns parses a campaign dataset. The header row must contain
// the five required columns (extra columns are ignored, order is free).
// Any structural problem — missing column, short row, unparsable number
// — is reported as an *port.InputError and no records are returned.
func ReadCampaigns(r io.Reader) ([]domain.Campaign, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &port.InputError{Reason: "empty file, header row required"}
	}
	if err != nil {
		return nil, &port.InputError{Reason: fmt.Sprintf("read header: %v", err)}
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &port.InputError{Field: col, Reason: "required column missing"}
		}
	}

	var records []domain.Campaign
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &port.InputError{Row: row, Reason: fmt.Sprintf("read row: %v", err)}
		}

		rec := domain.Campaign{Name: strings.TrimSpace(fields[index["campaign_name"]])}
		if rec.Impressions, err = parseCount(fields, index, "impressions"); err != nil {
			return nil, &port.InputError{Row: row, Field: "impressions", Reason: err.Error()}
		}
		if rec.Clicks, err = parseCount(fields, index, "clicks"); err != nil {
			return nil, &port.InputError{Row: row, Field: "clicks", Reason: err.Error()}
		}
		if rec.Conversions, err = parseCount(fields, index, "conversions"); err != nil {
			return nil, &port.InputError{Row: row, Field: "conversions", Reason: err.Error()}
		}
		if rec.Spend, err = decimal.NewFromString(strings.TrimSpace(fields[index["spend"]])); err != nil {
			return nil, &port.InputError{Row: row, Field: "spend", Reason: err.Error()}
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseCount(fields []string, index map[string]int, col string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(fields[index[col]]), 10, 64)
}
