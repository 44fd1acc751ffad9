package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . ReportRunner

import (
	"context"

	"github.com/secmon-lab/techflow/pkg/domain/model"
)

// ReportRunner generates a report on demand
type ReportRunner interface {
	// Run returns nil without error when there are no records to report on
	Run(ctx context.Context) (*model.Report, error)
}
