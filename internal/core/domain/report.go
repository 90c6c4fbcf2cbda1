package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignMetrics is a campaign together with its derived performance
// metrics. CTR, ConversionRate and ROI are percentages; CPC and CPA are
// currency amounts.
type CampaignMetrics struct {
	Campaign
	CTR            Metric `json:"ctr"`
	CPC            Metric `json:"cpc"`
	CPA            Metric `json:"cpa"`
	ConversionRate Metric `json:"conversion_rate"`
	ROI            Metric `json:"roi"`
}

// RankedCampaign is a campaign with metrics and its 1-based position in
// the ROI-descending ordering. Ranks are dense: ties keep their input
// order and still receive distinct consecutive ranks.
type RankedCampaign struct {
	CampaignMetrics
	Rank int `json:"rank"`
}

// UnderperformReason tags why a bottom-ranked campaign was flagged.
type UnderperformReason string

const (
	ReasonLowCTR            UnderperformReason = "low_ctr"
	ReasonLowConversionRate UnderperformReason = "low_conversion_rate"
	ReasonNegativeROI       UnderperformReason = "negative_roi"
)

// Underperformer is a bottom-ranked campaign with zero or more reasons.
// A campaign can land here purely by rank, with an empty reason set.
type Underperformer struct {
	Campaign RankedCampaign       `json:"campaign"`
	Reasons  []UnderperformReason `json:"reasons"`
}

// BudgetInsight summarises spend efficiency across the whole dataset.
// AverageCPA is undefined when total conversions are zero; in that case
// both partition counts are zero. Campaigns whose CPA equals the average
// exactly fall in neither partition.
type BudgetInsight struct {
	TotalSpend       decimal.Decimal `json:"total_spend"`
	TotalConversions int64           `json:"total_conversions"`
	AverageCPA       Metric          `json:"average_cpa"`
	AboveAverage     int             `json:"above_average"`
	BelowAverage     int             `json:"below_average"`
}

// Recommendations holds the five independent classifier sections. Each
// section is derived from the full ranked set; sections never affect one
// another and may overlap on small inputs.
type Recommendations struct {
	TopPerformers     []RankedCampaign `json:"top_performers"`
	Underperformers   []Underperformer `json:"underperformers"`
	LandingPageIssues []RankedCampaign `json:"landing_page_issues"`
	Budget            BudgetInsight    `json:"budget"`
	QuickWins         []RankedCampaign `json:"quick_wins"`
}

// Report is the complete analysis result for one dataset.
type Report struct {
	ID              uuid.UUID        `json:"id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Campaigns       []RankedCampaign `json:"campaigns"`
	Recommendations Recommendations  `json:"recommendations"`
}
