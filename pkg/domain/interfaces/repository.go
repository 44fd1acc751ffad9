package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . ReportRepository

import (
	"context"

	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
)

// ReportRepository defines the interface for the report archive
type ReportRepository interface {
	// PutReport stores a report, replacing any report of the same date
	PutReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, date types.ReportDate) (*model.Report, error)
	GetLatestReport(ctx context.Context) (*model.Report, error)
	// ListReportDates returns archived dates, newest first
	ListReportDates(ctx context.Context) ([]types.ReportDate, error)

	// Close closes the repository connection
	Close() error
}
