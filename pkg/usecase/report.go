package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"github.com/secmon-lab/techflow/pkg/service/render"
)

// ReportConfig holds configuration for Report use case
type ReportConfig struct {
	outputDir   string
	location    *time.Location
	now         func() time.Time
	modelConfig *model.Config
	repo        interfaces.ReportRepository
	mailer      interfaces.Mailer
	notifier    interfaces.Notifier
}

// ReportOption is a functional option for configuring Report
type ReportOption func(*ReportConfig)

// WithOutputDir sets the root directory for report files
func WithOutputDir(dir string) ReportOption {
	return func(c *ReportConfig) {
		c.outputDir = dir
	}
}

// WithLocation sets the time zone reports are generated in
func WithLocation(loc *time.Location) ReportOption {
	return func(c *ReportConfig) {
		c.location = loc
	}
}

// WithClock replaces the clock used to decide the report window
func WithClock(now func() time.Time) ReportOption {
	return func(c *ReportConfig) {
		c.now = now
	}
}

// WithModelConfig sets the field mapping and status labels
func WithModelConfig(cfg *model.Config) ReportOption {
	return func(c *ReportConfig) {
		c.modelConfig = cfg
	}
}

// WithRepository enables archiving of generated reports
func WithRepository(repo interfaces.ReportRepository) ReportOption {
	return func(c *ReportConfig) {
		c.repo = repo
	}
}

// WithMailer enables email delivery of generated reports
func WithMailer(mailer interfaces.Mailer) ReportOption {
	return func(c *ReportConfig) {
		c.mailer = mailer
	}
}

// WithNotifier enables the chat summary of generated reports
func WithNotifier(notifier interfaces.Notifier) ReportOption {
	return func(c *ReportConfig) {
		c.notifier = notifier
	}
}

// Report generates the weekly report
type Report struct {
	source interfaces.RecordSource
	config *ReportConfig
}

// NewReport creates a new Report use case
func NewReport(source interfaces.RecordSource, opts ...ReportOption) *Report {
	config := &ReportConfig{
		outputDir:   "reports",
		location:    time.UTC,
		now:         time.Now,
		modelConfig: model.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Report{
		source: source,
		config: config,
	}
}

// Run fetches all records, computes the report and delivers it. It returns
// nil without writing anything when the source has no records. Delivery
// failures after the files are written are logged and do not fail the run.
func (u *Report) Run(ctx context.Context) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	records, err := u.source.ListRecords(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch records")
	}
	if len(records) == 0 {
		logger.Info("No records found, skipping report")
		return nil, nil
	}
	logger.Info("Fetched records", "count", len(records))

	now := u.config.now().In(u.config.location)
	report := CalculateMetrics(records, now, u.config.modelConfig)

	id, err := types.NewReportID()
	if err != nil {
		return nil, err
	}
	report.ID = id

	files, err := render.WriteFiles(u.config.outputDir, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write report files", goerr.V("outputDir", u.config.outputDir))
	}
	logger.Info("Report files written",
		"json", files.JSON,
		"csv", files.CSV,
		"dashboard", files.Dashboard)

	if u.config.repo != nil {
		if err := u.config.repo.PutReport(ctx, report); err != nil {
			logger.Error("Failed to archive report", "error", err, "date", report.Date)
		}
	}

	if u.config.mailer != nil {
		if err := u.config.mailer.SendReport(ctx, report, files.Paths()); err != nil {
			logger.Error("Failed to send report email", "error", err)
		} else {
			logger.Info("Report email sent")
		}
	} else {
		logger.Info("Email is not configured, skipping")
	}

	if u.config.notifier != nil {
		if err := u.config.notifier.NotifyReport(ctx, report); err != nil {
			logger.Error("Failed to post report summary", "error", err)
		}
	}

	return report, nil
}
