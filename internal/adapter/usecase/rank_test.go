package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
)

func TestRankOrdersByROIDescending(t *testing.T) {
	ranked := Rank(ComputeMetrics([]domain.Campaign{
		record("A", 1000, 100, 10, "200"), // ROI 150
		record("B", 1000, 50, 1, "300"),   // ROI -83.33
		record("C", 1000, 200, 4, "100"),  // ROI 100
	}))

	require.Len(t, ranked, 3)
	names := []string{ranked[0].Name, ranked[1].Name, ranked[2].Name}
	require.Equal(t, []string{"A", "C", "B"}, names)
	for i, c := range ranked {
		require.Equal(t, i+1, c.Rank)
	}
}

func TestRankStableOnTies(t *testing.T) {
	// C and D carry identical ROI; input order must hold and ranks stay
	// dense.
	ranked := Rank(ComputeMetrics([]domain.Campaign{
		record("C", 1000, 200, 4, "100"), // ROI 100
		record("D", 1000, 20, 2, "50"),   // ROI 100
		record("A", 1000, 100, 10, "200"),
	}))

	require.Equal(t, "A", ranked[0].Name)
	require.Equal(t, "C", ranked[1].Name)
	require.Equal(t, "D", ranked[2].Name)
	require.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
}

func TestRankUndefinedROISortsLast(t *testing.T) {
	ranked := Rank(ComputeMetrics([]domain.Campaign{
		record("free1", 1000, 10, 1, "0"), // zero spend, ROI undefined
		record("B", 1000, 50, 1, "300"),   // ROI -83.33
		record("free2", 1000, 10, 1, "0"),
	}))

	require.Equal(t, "B", ranked[0].Name)
	require.Equal(t, "free1", ranked[1].Name)
	require.Equal(t, "free2", ranked[2].Name)
}

func TestRankEmptyInput(t *testing.T) {
	ranked := Rank(nil)
	require.NotNil(t, ranked)
	require.Empty(t, ranked)
}
