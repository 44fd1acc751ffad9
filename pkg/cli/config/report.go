package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Report holds the settings of a report run
type Report struct {
	OutputDir   string
	Timezone    string
	MappingFile string
	BaseURL     string
}

// Flags returns CLI flags for report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory receiving the report files",
			Category:    "Report",
			Value:       "reports",
			Sources:     cli.EnvVars("TECHFLOW_OUTPUT_DIR"),
			Destination: &r.OutputDir,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone of the report dates",
			Category:    "Report",
			Value:       "Europe/Kyiv",
			Sources:     cli.EnvVars("TECHFLOW_TIMEZONE"),
			Destination: &r.Timezone,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "YAML file overriding Airtable field names and status labels",
			Category:    "Report",
			Sources:     cli.EnvVars("TECHFLOW_CONFIG"),
			Destination: &r.MappingFile,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "External URL where dashboards are served (used in links)",
			Category:    "Report",
			Sources:     cli.EnvVars("TECHFLOW_BASE_URL"),
			Destination: &r.BaseURL,
		},
	}
}

// Location loads the report time zone
func (r *Report) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid time zone", goerr.V("timezone", r.Timezone))
	}
	return loc, nil
}

// ModelConfig loads the record layout, falling back to the defaults
func (r *Report) ModelConfig() (*model.Config, error) {
	return LoadMapping(r.MappingFile)
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("output_dir", r.OutputDir),
		slog.String("timezone", r.Timezone),
		slog.String("config", r.MappingFile),
		slog.String("base_url", r.BaseURL),
	)
}
