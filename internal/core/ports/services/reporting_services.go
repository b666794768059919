package services

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// ReportingSvcFacade builds the immutable daily snapshot the exporter
// serializes. Building a report never mutates stored state.
type ReportingSvcFacade interface {
	BuildDailyReport(ctx context.Context, date string) (*domain.DailyReport, error)
}
