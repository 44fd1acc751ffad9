package interfaces

//go:generate moq -out mocks/source_mock.go -pkg mocks . RecordSource

import (
	"context"

	"github.com/secmon-lab/techflow/pkg/domain/model"
)

// RecordSource pulls support-request records from the hosted table
type RecordSource interface {
	ListRecords(ctx context.Context) ([]model.RawRecord, error)
}
