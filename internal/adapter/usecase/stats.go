package usecase

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
)

// quantile returns the q-quantile (0 ≤ q ≤ 1) of vals using linear
// interpolation over the sorted values: the result sits at position
// q*(n-1), interpolated between its two neighbours when that position is
// fractional. For [1,2,3,4] this gives median 2.5 and p75 3.25. An empty
// input yields an undefined metric.
func quantile(vals []decimal.Decimal, q float64) domain.Metric {
	if len(vals) == 0 {
		return domain.UndefinedMetric()
	}
	sorted := slices.Clone(vals)
	slices.SortFunc(sorted, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if frac == 0 {
		return domain.DefinedMetric(sorted[lo])
	}
	step := sorted[lo+1].Sub(sorted[lo]).Mul(decimal.NewFromFloat(frac))
	return domain.DefinedMetric(sorted[lo].Add(step))
}

func median(vals []decimal.Decimal) domain.Metric {
	return quantile(vals, 0.5)
}

// definedValues collects the defined values of one metric across the
// ranked set. Thresholds are always computed over this subset so that
// undefined metrics never poison a median or percentile.
func definedValues(set []domain.RankedCampaign, metric func(domain.RankedCampaign) domain.Metric) []decimal.Decimal {
	vals := make([]decimal.Decimal, 0, len(set))
	for _, c := range set {
		if m := metric(c); m.Valid {
			vals = append(vals, m.Value)
		}
	}
	return vals
}

func ctrOf(c domain.RankedCampaign) domain.Metric            { return c.CTR }
func conversionRateOf(c domain.RankedCampaign) domain.Metric { return c.ConversionRate }
func roiOf(c domain.RankedCampaign) domain.Metric            { return c.ROI }
