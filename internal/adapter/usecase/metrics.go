package usecase

import (
	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeMetrics derives CTR, CPC, CPA, conversion rate and ROI for each
// record. The output preserves input order and carries a copy of the
// source record; the input slice is never mutated. A metric whose
// denominator is zero is left undefined rather than raising: CTR needs
// impressions, CPC and conversion rate need clicks, CPA needs
// conversions and ROI needs spend.
func ComputeMetrics(records []domain.Campaign) []domain.CampaignMetrics {
	out := make([]domain.CampaignMetrics, len(records))
	for i, rec := range records {
		m := domain.CampaignMetrics{Campaign: rec}

		clicks := decimal.NewFromInt(rec.Clicks)
		conversions := decimal.NewFromInt(rec.Conversions)

		if rec.Impressions != 0 {
			impressions := decimal.NewFromInt(rec.Impressions)
			m.CTR = domain.DefinedMetric(clicks.Mul(hundred).Div(impressions))
		}
		if rec.Clicks != 0 {
			m.CPC = domain.DefinedMetric(rec.Spend.Div(clicks))
			m.ConversionRate = domain.DefinedMetric(conversions.Mul(hundred).Div(clicks))
		}
		if rec.Conversions != 0 {
			m.CPA = domain.DefinedMetric(rec.Spend.Div(conversions))
		}
		if !rec.Spend.IsZero() {
			profit := rec.Revenue().Sub(rec.Spend)
			m.ROI = domain.DefinedMetric(profit.Mul(hundred).Div(rec.Spend))
		}

		out[i] = m
	}
	return out
}
