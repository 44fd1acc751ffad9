package interfaces

//go:generate moq -out mocks/notify_mock.go -pkg mocks . Mailer Notifier

import (
	"context"

	"github.com/secmon-lab/techflow/pkg/domain/model"
)

// Mailer delivers the report by email with the written files attached
type Mailer interface {
	SendReport(ctx context.Context, report *model.Report, attachments []string) error
}

// Notifier posts a short report summary to a chat channel
type Notifier interface {
	NotifyReport(ctx context.Context, report *model.Report) error
}
