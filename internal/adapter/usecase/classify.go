package usecase

import (
	"slices"

	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
)

const (
	topPerformerCount   = 3
	underperformerCount = 3
)

// Classify derives the five recommendation sections from the ranked set.
// Each section is an independent pure predicate over the same immutable
// slice; on small inputs the top and bottom sections may overlap and are
// deliberately not deduplicated. All boundary comparisons are strict: a
// campaign sitting exactly on a median, percentile or average threshold
// never matches.
func Classify(ranked []domain.RankedCampaign) domain.Recommendations {
	return domain.Recommendations{
		TopPerformers:     topPerformers(ranked),
		Underperformers:   underperformers(ranked),
		LandingPageIssues: landingPageIssues(ranked),
		Budget:            budgetInsight(ranked),
		QuickWins:         quickWins(ranked),
	}
}

// topPerformers returns the first three campaigns by rank, fewer when
// the dataset is smaller.
func topPerformers(ranked []domain.RankedCampaign) []domain.RankedCampaign {
	n := min(topPerformerCount, len(ranked))
	return slices.Clone(ranked[:n])
}

// underperformers returns the last three campaigns by rank, each tagged
// with the reasons it triggered: CTR below the full-set median CTR,
// conversion rate below the full-set median, and negative ROI. A bottom
// campaign with no triggered reason is still listed with an empty set.
func underperformers(ranked []domain.RankedCampaign) []domain.Underperformer {
	n := min(underperformerCount, len(ranked))
	if n == 0 {
		return []domain.Underperformer{}
	}
	medianCTR := median(definedValues(ranked, ctrOf))
	medianConvRate := median(definedValues(ranked, conversionRateOf))

	out := make([]domain.Underperformer, 0, n)
	for _, c := range ranked[len(ranked)-n:] {
		u := domain.Underperformer{Campaign: c, Reasons: []domain.UnderperformReason{}}
		if c.CTR.Valid && medianCTR.Valid && c.CTR.Value.LessThan(medianCTR.Value) {
			u.Reasons = append(u.Reasons, domain.ReasonLowCTR)
		}
		if c.ConversionRate.Valid && medianConvRate.Valid && c.ConversionRate.Value.LessThan(medianConvRate.Value) {
			u.Reasons = append(u.Reasons, domain.ReasonLowConversionRate)
		}
		if c.ROI.Valid && c.ROI.Value.IsNegative() {
			u.Reasons = append(u.Reasons, domain.ReasonNegativeROI)
		}
		out = append(out, u)
	}
	return out
}

// landingPageIssues flags campaigns that attract traffic but fail to
// convert it: CTR above the 75th percentile of all CTRs and conversion
// rate below the median of all conversion rates, both thresholds over
// the full set.
func landingPageIssues(ranked []domain.RankedCampaign) []domain.RankedCampaign {
	p75CTR := quantile(definedValues(ranked, ctrOf), 0.75)
	medianConvRate := median(definedValues(ranked, conversionRateOf))
	if !p75CTR.Valid || !medianConvRate.Valid {
		return []domain.RankedCampaign{}
	}

	out := []domain.RankedCampaign{}
	for _, c := range ranked {
		if c.CTR.Valid && c.CTR.Value.GreaterThan(p75CTR.Value) &&
			c.ConversionRate.Valid && c.ConversionRate.Value.LessThan(medianConvRate.Value) {
			out = append(out, c)
		}
	}
	return out
}

// budgetInsight totals spend and conversions, derives the dataset-wide
// average CPA and counts campaigns on either side of it. With zero total
// conversions the average is undefined and both counts stay zero.
func budgetInsight(ranked []domain.RankedCampaign) domain.BudgetInsight {
	insight := domain.BudgetInsight{TotalSpend: decimal.Zero}
	for _, c := range ranked {
		insight.TotalSpend = insight.TotalSpend.Add(c.Spend)
		insight.TotalConversions += c.Conversions
	}
	if insight.TotalConversions == 0 {
		return insight
	}

	avg := insight.TotalSpend.Div(decimal.NewFromInt(insight.TotalConversions))
	insight.AverageCPA = domain.DefinedMetric(avg)
	for _, c := range ranked {
		if !c.CPA.Valid {
			continue
		}
		switch c.CPA.Value.Cmp(avg) {
		case -1:
			insight.AboveAverage++
		case 1:
			insight.BelowAverage++
		}
	}
	return insight
}

// quickWins selects campaigns with ROI strictly above the median ROI and
// spend strictly below the median spend. Zero matches is a valid result.
func quickWins(ranked []domain.RankedCampaign) []domain.RankedCampaign {
	medianROI := median(definedValues(ranked, roiOf))
	spends := make([]decimal.Decimal, len(ranked))
	for i, c := range ranked {
		spends[i] = c.Spend
	}
	medianSpend := median(spends)
	if !medianROI.Valid || !medianSpend.Valid {
		return []domain.RankedCampaign{}
	}

	out := []domain.RankedCampaign{}
	for _, c := range ranked {
		if c.ROI.Valid && c.ROI.Value.GreaterThan(medianROI.Value) && c.Spend.LessThan(medianSpend.Value) {
			out = append(out, c)
		}
	}
	return out
}
