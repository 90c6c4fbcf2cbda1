package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const defaultListLimit = 20

// AnalyzerService implements port.Analyzer. It orchestrates the pure
// pipeline (validate → compute → rank → classify) and the outbound
// ports for persistence and caching.
type AnalyzerService struct {
	repo     port.ReportRepository
	cache    port.ReportCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewAnalyzerService creates the service. cache may be nil to disable
// caching; cacheTTL is only consulted when a cache is present.
func NewAnalyzerService(repo port.ReportRepository, cache port.ReportCache, cacheTTL time.Duration, logger *slog.Logger) *AnalyzerService {
	return &AnalyzerService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// BuildReport runs the pure pipeline over raw records without touching
// any outbound port. It is shared by Analyze and the one-shot CLI mode.
// A structurally invalid record yields an *port.InputError; an empty
// dataset is valid and produces a report with empty sections.
func BuildReport(records []domain.Campaign) (*domain.Report, error) {
	if err := validate(records); err != nil {
		return nil, err
	}
	ranked := Rank(ComputeMetrics(records))
	return &domain.Report{
		ID:              uuid.New(),
		GeneratedAt:     time.Now().UTC(),
		Campaigns:       ranked,
		Recommendations: Classify(ranked),
	}, nil
}

// Analyze validates, analyzes, persists and caches one dataset.
func (s *AnalyzerService) Analyze(ctx context.Context, records []domain.Campaign) (*domain.Report, error) {
	report, err := BuildReport(records)
	if err != nil {
		return nil, err
	}
	if err = s.repo.SaveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	s.cacheSet(ctx, report)
	return report, nil
}

// GetReport returns a stored report, consulting the cache first. Cache
// errors are logged and fall through to the repository.
func (s *AnalyzerService) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if s.cache != nil {
		report, err := s.cache.Get(ctx, id)
		if err == nil {
			return report, nil
		}
		if !errors.Is(err, port.ErrReportNotFound) {
			s.logger.Warn("report cache read failed", slog.Any("error", err))
		}
	}
	report, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, report)
	return report, nil
}

// ListReports returns summaries of the most recent reports.
func (s *AnalyzerService) ListReports(ctx context.Context, limit int) ([]port.ReportSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.ListReports(ctx, limit)
}

func (s *AnalyzerService) cacheSet(ctx context.Context, report *domain.Report) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, report, s.cacheTTL); err != nil {
		s.logger.Warn("report cache write failed", slog.Any("error", err))
	}
}

func validate(records []domain.Campaign) error {
	for i, rec := range records {
		row := i + 1
		if rec.Name == "" {
			return &port.InputError{Row: row, Field: "campaign_name", Reason: "must not be empty"}
		}
		if rec.Impressions < 0 {
			return &port.InputError{Row: row, Field: "impressions", Reason: "must not be negative"}
		}
		if rec.Clicks < 0 {
			return &port.InputError{Row: row, Field: "clicks", Reason: "must not be negative"}
		}
		if rec.Conversions < 0 {
			return &port.InputError{Row: row, Field: "conversions", Reason: "must not be negative"}
		}
		if rec.Spend.IsNegative() {
			return &port.InputError{Row: row, Field: "spend", Reason: "must not be negative"}
		}
	}
	return nil
}
