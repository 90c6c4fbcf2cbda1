package domain

import "github.com/shopspring/decimal"

// AverageOrderValue is the assumed revenue per conversion, in currency
// units. The input data carries no revenue column, so ROI is estimated
// from this fixed business assumption.
var AverageOrderValue = decimal.NewFromInt(50)

// Campaign is a single row of raw campaign data as ingested.
// Clicks ≤ Impressions and Conversions ≤ Clicks are expected but not
// enforced; out-of-range rates are propagated as-is.
type Campaign struct {
	Name        string          `json:"campaign_name"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
}

// Revenue estimates campaign revenue from the fixed average order value.
func (c Campaign) Revenue() decimal.Decimal {
	return decimal.NewFromInt(c.Conversions).Mul(AverageOrderValue)
}
