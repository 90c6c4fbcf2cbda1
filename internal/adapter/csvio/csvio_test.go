package csvio

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adpulse/internal/adapter/usecase"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const sampleCSV = `campaign_name,impressions,clicks,conversions,spend
Summer Sale,1000,100,10,200
Brand Push,1000,50,1,300.50
`

func TestReadCampaigns(t *testing.T) {
	records, err := ReadCampaigns(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "Summer Sale", records[0].Name)
	require.EqualValues(t, 1000, records[0].Impressions)
	require.EqualValues(t, 100, records[0].Clicks)
	require.EqualValues(t, 10, records[0].Conversions)
	require.True(t, records[0].Spend.Equal(decimal.RequireFromString("200")))

	require.Equal(t, "Brand Push", records[1].Name)
	require.True(t, records[1].Spend.Equal(decimal.RequireFromString("300.50")))
}

func TestReadCampaignsReordersColumns(t *testing.T) {
	csv := "spend,clicks,campaign_name,conversions,impressions,extra\n10,5,X,1,100,ignored\n"
	records, err := ReadCampaigns(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "X", records[0].Name)
	require.EqualValues(t, 100, records[0].Impressions)
}

func TestReadCampaignsMissingColumn(t *testing.T) {
	csv := "campaign_name,impressions,clicks,spend\nX,100,5,10\n"
	_, err := ReadCampaigns(strings.NewReader(csv))

	var inputErr *port.InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "conversions", inputErr.Field)
}

func TestReadCampaignsMalformedNumber(t *testing.T) {
	csv := "campaign_name,impressions,clicks,conversions,spend\nX,100,five,1,10\n"
	_, err := ReadCampaigns(strings.NewReader(csv))

	var inputErr *port.InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, 1, inputErr.Row)
	require.Equal(t, "clicks", inputErr.Field)
}

func TestReadCampaignsEmptyFile(t *testing.T) {
	_, err := ReadCampaigns(strings.NewReader(""))
	var inputErr *port.InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestWriteResults(t *testing.T) {
	records, err := ReadCampaigns(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	ranked := usecase.Rank(usecase.ComputeMetrics(records))

	var sb strings.Builder
	require.NoError(t, WriteResults(&sb, ranked))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "rank,campaign_name,impressions,clicks,conversions,spend,ctr,cpc,cpa,conversion_rate,roi", lines[0])
	require.Equal(t, "1,Summer Sale,1000,100,10,200,10,2,20,10,150", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "2,Brand Push,"))
}

func TestWriteResultsUndefinedMetricsEmpty(t *testing.T) {
	ranked := usecase.Rank(usecase.ComputeMetrics([]domain.Campaign{
		{Name: "dead", Spend: decimal.Zero},
	}))

	var sb strings.Builder
	require.NoError(t, WriteResults(&sb, ranked))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Equal(t, "1,dead,0,0,0,0,,,,,", lines[1])
}
