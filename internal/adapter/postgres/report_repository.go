package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// ReportRepository implements port.ReportRepository using pgxpool.
// Reports are stored as one header row plus one row per ranked campaign;
// the recommendation sections are kept as JSONB on the header. Numeric
// columns travel as text on both sides to preserve decimal values.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a new repository instance.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// SaveReport stores a report and its campaign rows in one transaction.
func (r *ReportRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	recommendations, err := json.Marshal(report.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	budget := report.Recommendations.Budget

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO reports
    (id, generated_at, campaign_count, total_spend, total_conversions, avg_cpa, recommendations)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		report.ID, report.GeneratedAt, len(report.Campaigns),
		budget.TotalSpend.String(), budget.TotalConversions,
		metricParam(budget.AverageCPA), recommendations)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	for _, c := range report.Campaigns {
		_, err = tx.Exec(ctx, `INSERT INTO report_campaigns
    (report_id, rank, name, impressions, clicks, conversions, spend,
     ctr, cpc, cpa, conversion_rate, roi)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			report.ID, c.Rank, c.Name, c.Impressions, c.Clicks, c.Conversions,
			c.Spend.String(), metricParam(c.CTR), metricParam(c.CPC),
			metricParam(c.CPA), metricParam(c.ConversionRate), metricParam(c.ROI))
		if err != nil {
			return fmt.Errorf("insert report campaign %q: %w", c.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// GetReport loads a report by id, or port.ErrReportNotFound.
func (r *ReportRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	report := &domain.Report{ID: id}

	var recommendations []byte
	err := r.pool.QueryRow(ctx,
		`SELECT generated_at, recommendations FROM reports WHERE id = $1`, id).
		Scan(&report.GeneratedAt, &recommendations)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select report: %w", err)
	}
	if err = json.Unmarshal(recommendations, &report.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT rank, name, impressions, clicks, conversions, spend::text,
               ctr::text, cpc::text, cpa::text, conversion_rate::text, roi::text
        FROM report_campaigns
        WHERE report_id = $1
        ORDER BY rank`, id)
	if err != nil {
		return nil, fmt.Errorf("select report campaigns: %w", err)
	}
	defer rows.Close()

	report.Campaigns = []domain.RankedCampaign{}
	for rows.Next() {
		var (
			c     domain.RankedCampaign
			spend string
			ctr, cpc, cpa, convRate, roi *string
		)
		if err = rows.Scan(&c.Rank, &c.Name, &c.Impressions, &c.Clicks, &c.Conversions,
			&spend, &ctr, &cpc, &cpa, &convRate, &roi); err != nil {
			return nil, fmt.Errorf("scan report campaign: %w", err)
		}
		if c.Spend, err = decimal.NewFromString(spend); err != nil {
			return nil, fmt.Errorf("parse spend: %w", err)
		}
		if c.CTR, err = metricFromColumn(ctr); err != nil {
			return nil, err
		}
		if c.CPC, err = metricFromColumn(cpc); err != nil {
			return nil, err
		}
		if c.CPA, err = metricFromColumn(cpa); err != nil {
			return nil, err
		}
		if c.ConversionRate, err = metricFromColumn(convRate); err != nil {
			return nil, err
		}
		if c.ROI, err = metricFromColumn(roi); err != nil {
			return nil, err
		}
		report.Campaigns = append(report.Campaigns, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns summaries of the most recent reports, newest first.
func (r *ReportRepository) ListReports(ctx context.Context, limit int) ([]port.ReportSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, generated_at, campaign_count, total_spend::text, avg_cpa::text
        FROM reports
        ORDER BY generated_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select reports: %w", err)
	}
	defer rows.Close()

	summaries := []port.ReportSummary{}
	for rows.Next() {
		var (
			s      port.ReportSummary
			avgCPA *string
		)
		if err = rows.Scan(&s.ID, &s.GeneratedAt, &s.CampaignCount, &s.TotalSpend, &avgCPA); err != nil {
			return nil, fmt.Errorf("scan report summary: %w", err)
		}
		if s.AverageCPA, err = metricFromColumn(avgCPA); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// metricParam encodes a metric for a nullable numeric column. Stored
// values are the presentation-rounded ones.
func metricParam(m domain.Metric) any {
	if !m.Valid {
		return nil
	}
	return m.Rounded().String()
}

func metricFromColumn(v *string) (domain.Metric, error) {
	if v == nil {
		return domain.UndefinedMetric(), nil
	}
	value, err := decimal.NewFromString(*v)
	if err != nil {
		return domain.Metric{}, fmt.Errorf("parse metric column: %w", err)
	}
	return domain.DefinedMetric(value), nil
}
