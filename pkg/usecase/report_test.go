package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"github.com/secmon-lab/techflow/pkg/repository"
	"github.com/secmon-lab/techflow/pkg/usecase"
)

func sampleRecords() []model.RawRecord {
	return []model.RawRecord{
		record(map[string]any{
			"Request ID":    "A",
			"Status":        "Closed",
			"Assignee Name": []any{"Olena"},
			"Service Name":  []any{"Audit"},
			"Created At":    ts(testNow.Add(-48 * time.Hour)),
			"Closed At":     ts(testNow.Add(-24 * time.Hour)),
		}),
		record(map[string]any{
			"Request ID": "B",
			"Status":     "In progress",
			"Created At": ts(testNow.Add(-10 * 24 * time.Hour)),
		}),
	}
}

func fixedClock() time.Time {
	return testNow
}

func TestReport_Run(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source := &mocks.RecordSourceMock{
		ListRecordsFunc: func(ctx context.Context) ([]model.RawRecord, error) {
			return sampleRecords(), nil
		},
	}
	mailer := &mocks.MailerMock{
		SendReportFunc: func(ctx context.Context, report *model.Report, attachments []string) error {
			return nil
		},
	}
	notifier := &mocks.NotifierMock{
		NotifyReportFunc: func(ctx context.Context, report *model.Report) error {
			return nil
		},
	}
	repo := repository.NewMemory()

	uc := usecase.NewReport(source,
		usecase.WithOutputDir(dir),
		usecase.WithClock(fixedClock),
		usecase.WithRepository(repo),
		usecase.WithMailer(mailer),
		usecase.WithNotifier(notifier),
	)

	report, err := uc.Run(ctx)
	gt.NoError(t, err).Required()
	gt.V(t, report).NotNil()
	gt.NotEqual(t, report.ID, types.ReportID(""))
	gt.Equal(t, report.Date, types.ReportDate("2026-10-19"))
	gt.Equal(t, report.Metrics.NewRequestsThisWeek, 1)
	gt.Equal(t, report.Metrics.TotalRequests, 2)

	dateDir := filepath.Join(dir, "2026-10-19")
	for _, name := range []string{
		"techflow_report_2026-10-19.json",
		"techflow_report_2026-10-19.csv",
		"techflow_dashboard_2026-10-19.html",
	} {
		_, err := os.Stat(filepath.Join(dateDir, name))
		gt.NoError(t, err)
	}

	archived, err := repo.GetReport(ctx, "2026-10-19")
	gt.NoError(t, err).Required()
	gt.Equal(t, archived.ID, report.ID)

	mailCalls := mailer.SendReportCalls()
	gt.Equal(t, len(mailCalls), 1)
	gt.Equal(t, mailCalls[0].Attachments, []string{
		filepath.Join(dateDir, "techflow_report_2026-10-19.csv"),
		filepath.Join(dateDir, "techflow_report_2026-10-19.json"),
		filepath.Join(dateDir, "techflow_dashboard_2026-10-19.html"),
	})
	gt.Equal(t, len(notifier.NotifyReportCalls()), 1)
}

func TestReport_Run_Location(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	gt.NoError(t, err).Required()

	source := &mocks.RecordSourceMock{
		ListRecordsFunc: func(ctx context.Context) ([]model.RawRecord, error) {
			return sampleRecords(), nil
		},
	}

	// 22:30 UTC is already the next day in Kyiv
	uc := usecase.NewReport(source,
		usecase.WithOutputDir(t.TempDir()),
		usecase.WithLocation(kyiv),
		usecase.WithClock(func() time.Time {
			return time.Date(2026, 10, 19, 22, 30, 0, 0, time.UTC)
		}),
	)

	report, err := uc.Run(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, report.Date, types.ReportDate("2026-10-20"))
	gt.Equal(t, report.ReportDate, "2026-10-20 01:30 (Kyiv)")
}

func TestReport_Run_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	source := &mocks.RecordSourceMock{
		ListRecordsFunc: func(ctx context.Context) ([]model.RawRecord, error) {
			return []model.RawRecord{}, nil
		},
	}
	mailer := &mocks.MailerMock{}

	uc := usecase.NewReport(source,
		usecase.WithOutputDir(dir),
		usecase.WithClock(fixedClock),
		usecase.WithMailer(mailer),
	)

	report, err := uc.Run(context.Background())
	gt.NoError(t, err).Required()
	gt.V(t, report).Nil()

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(entries), 0)
	gt.Equal(t, len(mailer.SendReportCalls()), 0)
}

func TestReport_Run_SourceError(t *testing.T) {
	dir := t.TempDir()
	source := &mocks.RecordSourceMock{
		ListRecordsFunc: func(ctx context.Context) ([]model.RawRecord, error) {
			return nil, errors.New("401 unauthorized")
		},
	}

	uc := usecase.NewReport(source, usecase.WithOutputDir(dir))

	_, err := uc.Run(context.Background())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to fetch records")

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(entries), 0)
}

func TestReport_Run_DeliveryFailuresKeepFiles(t *testing.T) {
	dir := t.TempDir()
	source := &mocks.RecordSourceMock{
		ListRecordsFunc: func(ctx context.Context) ([]model.RawRecord, error) {
			return sampleRecords(), nil
		},
	}
	repo := &mocks.ReportRepositoryMock{
		PutReportFunc: func(ctx context.Context, report *model.Report) error {
			return errors.New("firestore unavailable")
		},
	}
	mailer := &mocks.MailerMock{
		SendReportFunc: func(ctx context.Context, report *model.Report, attachments []string) error {
			return errors.New("smtp: connection refused")
		},
	}
	notifier := &mocks.NotifierMock{
		NotifyReportFunc: func(ctx context.Context, report *model.Report) error {
			return errors.New("channel_not_found")
		},
	}

	uc := usecase.NewReport(source,
		usecase.WithOutputDir(dir),
		usecase.WithClock(fixedClock),
		usecase.WithRepository(repo),
		usecase.WithMailer(mailer),
		usecase.WithNotifier(notifier),
	)

	report, err := uc.Run(context.Background())
	gt.NoError(t, err).Required()
	gt.V(t, report).NotNil()

	_, err = os.Stat(filepath.Join(dir, "2026-10-19", "techflow_report_2026-10-19.json"))
	gt.NoError(t, err)
	gt.Equal(t, len(repo.PutReportCalls()), 1)
	gt.Equal(t, len(mailer.SendReportCalls()), 1)
	gt.Equal(t, len(notifier.NotifyReportCalls()), 1)
}

func TestReport_Run_CustomFields(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Fields.Status = "State"
	cfg.Fields.AssigneeName = "Owner"

	source := &mocks.RecordSourceMock{
		ListRecordsFunc: func(ctx context.Context) ([]model.RawRecord, error) {
			return []model.RawRecord{
				record(map[string]any{"State": "Closed", "Owner": []any{"Iryna"}}),
			}, nil
		},
	}

	uc := usecase.NewReport(source,
		usecase.WithOutputDir(t.TempDir()),
		usecase.WithClock(fixedClock),
		usecase.WithModelConfig(cfg),
	)

	report, err := uc.Run(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, report.Metrics.Top3Consultants, []model.ConsultantStat{{Name: "Iryna", ClosedCount: 1}})
}
