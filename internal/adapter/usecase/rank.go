package usecase

import (
	"slices"

	"adpulse/internal/core/domain"
)

// Rank orders campaigns by ROI descending and assigns 1-based dense
// ranks. The sort is stable: campaigns with equal ROI keep their input
// order and still receive distinct consecutive ranks. Campaigns whose
// ROI is undefined sort after every defined-ROI campaign, again in input
// order. An empty input yields an empty, non-nil slice.
func Rank(metrics []domain.CampaignMetrics) []domain.RankedCampaign {
	ranked := make([]domain.RankedCampaign, len(metrics))
	for i, m := range metrics {
		ranked[i] = domain.RankedCampaign{CampaignMetrics: m}
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedCampaign) int {
		switch {
		case a.ROI.Valid && b.ROI.Valid:
			return b.ROI.Value.Cmp(a.ROI.Value)
		case a.ROI.Valid:
			return -1
		case b.ROI.Valid:
			return 1
		default:
			return 0
		}
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
