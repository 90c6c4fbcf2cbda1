package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"adpulse/internal/core/domain"
)

var resultColumns = []string{
	"rank", "campaign_name", "impressions", "clicks", "conversions",
	"spend", "ctr", "cpc", "cpa", "conversion_rate", "roi",
}

// WriteResults writes the ranked campaigns as the flat results file.
// Metric values are presentation-rounded; undefined metrics are written
// as empty cells.
func WriteResults(w io.Writer, campaigns []domain.RankedCampaign) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultColumns); err != nil {
		return err
	}
	for _, c := range campaigns {
		row := []string{
			strconv.Itoa(c.Rank),
			c.Name,
			strconv.FormatInt(c.Impressions, 10),
			strconv.FormatInt(c.Clicks, 10),
			strconv.FormatInt(c.Conversions, 10),
			c.Spend.String(),
			metricCell(c.CTR),
			metricCell(c.CPC),
			metricCell(c.CPA),
			metricCell(c.ConversionRate),
			metricCell(c.ROI),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func metricCell(m domain.Metric) string {
	if !m.Valid {
		return ""
	}
	return m.Rounded().String()
}
