package port

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

// Analyzer defines the business operations exposed by the analytics
// engine. This interface is the primary port into the application
// domain; the HTTP adapter and the one-shot CLI mode both drive it.
type Analyzer interface {
	// Analyze validates the raw campaign records, derives metrics, ranks
	// the campaigns by ROI and classifies them into recommendation
	// sections. The resulting report is persisted and cached before it is
	// returned. Structurally invalid input yields an *InputError and no
	// partial results. An empty dataset is valid and produces a report
	// with empty sections.
	Analyze(ctx context.Context, records []domain.Campaign) (*domain.Report, error)

	// GetReport returns a previously generated report by id, consulting
	// the cache before the repository. ErrReportNotFound is returned when
	// the id is unknown.
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)

	// ListReports returns summaries of the most recent reports, newest
	// first. limit caps the result; non-positive limits fall back to a
	// server-side default.
	ListReports(ctx context.Context, limit int) ([]ReportSummary, error)
}

// ReportSummary is a lightweight listing row for stored reports.
type ReportSummary struct {
	ID            uuid.UUID     `json:"id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	CampaignCount int           `json:"campaign_count"`
	TotalSpend    string        `json:"total_spend"`
	AverageCPA    domain.Metric `json:"average_cpa"`
}

// InputError reports a structural problem with the submitted dataset:
// a missing column, an empty campaign name or a negative counter. It is
// fatal for the whole request; the analyzer never returns partial
// results alongside it.
type InputError struct {
	Row    int    // 1-based record index, 0 when not row-specific
	Field  string // offending column, empty when not field-specific
	Reason string
}

func (e *InputError) Error() string {
	switch {
	case e.Row > 0 && e.Field != "":
		return fmt.Sprintf("invalid input: record %d, field %q: %s", e.Row, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("invalid input: field %q: %s", e.Field, e.Reason)
	default:
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
}
