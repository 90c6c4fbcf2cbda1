package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpulse/internal/adapter/postgres"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/core/domain"
)

// Seed analyzes a demo dataset and stores the resulting report, so a
// fresh instance has something to show.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	records := []domain.Campaign{
		{Name: "Summer Sale", Impressions: 50000, Clicks: 2500, Conversions: 180, Spend: decimal.RequireFromString("3200")},
		{Name: "Brand Awareness", Impressions: 120000, Clicks: 1800, Conversions: 45, Spend: decimal.RequireFromString("5400.50")},
		{Name: "Retargeting Q3", Impressions: 20000, Clicks: 1600, Conversions: 210, Spend: decimal.RequireFromString("2100")},
		{Name: "Newsletter Signup", Impressions: 35000, Clicks: 900, Conversions: 60, Spend: decimal.RequireFromString("1150.75")},
		{Name: "Holiday Teaser", Impressions: 80000, Clicks: 3200, Conversions: 95, Spend: decimal.RequireFromString("4800")},
		{Name: "App Install Push", Impressions: 64000, Clicks: 4100, Conversions: 70, Spend: decimal.RequireFromString("3900")},
		{Name: "Loyalty Winback", Impressions: 15000, Clicks: 450, Conversions: 85, Spend: decimal.RequireFromString("760")},
		{Name: "Video Prospecting", Impressions: 98000, Clicks: 1200, Conversions: 12, Spend: decimal.RequireFromString("2950.25")},
	}

	report, err := usecase.BuildReport(records)
	if err != nil {
		return err
	}
	return postgres.NewReportRepository(pool).SaveReport(ctx, report)
}
