package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/techflow/pkg/cli/config"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// reportConfig gathers the settings shared by the commands that run the report
type reportConfig struct {
	airtable config.Airtable
	smtp     config.SMTP
	slack    config.Slack
	report   config.Report
}

func (c *reportConfig) Flags() []cli.Flag {
	return joinFlags(
		c.airtable.Flags(),
		c.smtp.Flags(),
		c.slack.Flags(),
		c.report.Flags(),
	)
}

// newUseCase wires the report use case. Optional deliveries that fail to
// initialize are logged and left out.
func (c *reportConfig) newUseCase(ctx context.Context, repo interfaces.ReportRepository) (*usecase.Report, error) {
	logger := ctxlog.From(ctx)

	source, err := c.airtable.Configure()
	if err != nil {
		return nil, err
	}

	loc, err := c.report.Location()
	if err != nil {
		return nil, err
	}

	modelCfg, err := c.report.ModelConfig()
	if err != nil {
		return nil, err
	}

	opts := []usecase.ReportOption{
		usecase.WithOutputDir(c.report.OutputDir),
		usecase.WithLocation(loc),
		usecase.WithModelConfig(modelCfg),
	}
	if repo != nil {
		opts = append(opts, usecase.WithRepository(repo))
	}

	mailer, err := c.smtp.Configure()
	if err != nil {
		return nil, err
	}
	if mailer != nil {
		opts = append(opts, usecase.WithMailer(mailer))
	}

	notifier, err := c.slack.Configure(ctx, c.report.BaseURL)
	if err != nil {
		logger.Warn("Slack notifications disabled", "error", err)
	} else if notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
	}

	return usecase.NewReport(source, opts...), nil
}

func cmdReport() *cli.Command {
	var (
		cfg          reportConfig
		firestoreCfg config.Firestore
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Generate the weekly report and deliver it",
		Flags: joinFlags(cfg.Flags(), firestoreCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting weekly report",
				slog.Any("airtable", cfg.airtable),
				slog.Any("smtp", cfg.smtp),
				slog.Any("slack", cfg.slack),
				slog.Any("report", cfg.report),
				slog.Any("firestore", firestoreCfg),
			)

			if err := cfg.airtable.Validate(); err != nil {
				return err
			}

			var repo interfaces.ReportRepository
			if firestoreCfg.IsConfigured() {
				r, err := firestoreCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer r.Close()
				repo = r
			}

			uc, err := cfg.newUseCase(ctx, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to configure report")
			}

			report, err := uc.Run(ctx)
			if err != nil {
				return err
			}
			if report == nil {
				return nil
			}

			logReportSummary(logger, report)
			return nil
		},
	}
}

// logReportSummary logs the headline metrics of a finished run
func logReportSummary(logger *slog.Logger, report *model.Report) {
	m := report.Metrics

	top := lo.Map(m.Top3Consultants, func(c model.ConsultantStat, i int) string {
		return fmt.Sprintf("%d. %s: %d closed", i+1, c.Name, c.ClosedCount)
	})
	if len(top) == 0 {
		top = []string{"no closed requests in the period"}
	}

	logger.Info("Weekly report completed",
		slog.String("date", report.Date.String()),
		slog.String("period", report.Period),
		slog.Int("new_requests_this_week", m.NewRequestsThisWeek),
		slog.Int("closed_requests_this_week", m.ClosedRequestsThisWeek),
		slog.Float64("avg_processing_time_hours", m.AvgProcessingTimeHours),
		slog.Float64("avg_reaction_time_hours", m.AvgReactionTimeHours),
		slog.Int("in_progress_count", m.InProgressCount),
		slog.Int("overdue_count", m.OverdueCount),
		slog.Int("total_requests", m.TotalRequests),
		slog.Any("top_3_consultants", top),
	)
}
