package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

// ErrReportNotFound is returned when a report id is unknown to both the
// cache and the repository.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines the persistence layer for analysis reports.
// It is an outbound port; implementations must be concurrency-safe.
type ReportRepository interface {
	// SaveReport stores a complete report atomically.
	SaveReport(ctx context.Context, report *domain.Report) error
	// GetReport loads a report by id, or ErrReportNotFound.
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	// ListReports returns summaries of the most recent reports, newest
	// first, capped at limit.
	ListReports(ctx context.Context, limit int) ([]ReportSummary, error)
}

// ReportCache is an optional read-through cache for reports. A nil
// ReportCache disables caching; implementations return ErrReportNotFound
// on cache misses. Cache failures are advisory only and must not fail
// the request.
type ReportCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Set(ctx context.Context, report *domain.Report, ttl time.Duration) error
}
