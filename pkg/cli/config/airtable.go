package config

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/service/airtable"
	"github.com/urfave/cli/v3"
)

// Airtable holds the record source configuration
type Airtable struct {
	APIKey    string
	BaseID    string
	Table     string
	BaseURL   string
	RateLimit float64
}

// Flags returns CLI flags for Airtable configuration
func (a *Airtable) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "airtable-api-key",
			Usage:       "Airtable personal access token",
			Category:    "Airtable",
			Sources:     cli.EnvVars("AIRTABLE_API_KEY"),
			Destination: &a.APIKey,
		},
		&cli.StringFlag{
			Name:        "airtable-base-id",
			Usage:       "Airtable base ID",
			Category:    "Airtable",
			Sources:     cli.EnvVars("AIRTABLE_BASE_ID"),
			Destination: &a.BaseID,
		},
		&cli.StringFlag{
			Name:        "airtable-table",
			Usage:       "Airtable table holding the requests",
			Category:    "Airtable",
			Value:       "Requests",
			Sources:     cli.EnvVars("AIRTABLE_TABLE_NAME"),
			Destination: &a.Table,
		},
		&cli.StringFlag{
			Name:        "airtable-base-url",
			Usage:       "Airtable API endpoint",
			Category:    "Airtable",
			Value:       airtable.DefaultBaseURL,
			Sources:     cli.EnvVars("AIRTABLE_BASE_URL"),
			Destination: &a.BaseURL,
		},
		&cli.FloatFlag{
			Name:        "airtable-rate-limit",
			Usage:       "Maximum Airtable requests per second (0 disables pacing)",
			Category:    "Airtable",
			Value:       airtable.DefaultRateLimit,
			Sources:     cli.EnvVars("AIRTABLE_RATE_LIMIT"),
			Destination: &a.RateLimit,
		},
	}
}

// Validate reports the missing required settings by their variable names
func (a *Airtable) Validate() error {
	var missing []string
	if a.APIKey == "" {
		missing = append(missing, "AIRTABLE_API_KEY")
	}
	if a.BaseID == "" {
		missing = append(missing, "AIRTABLE_BASE_ID")
	}
	if a.Table == "" {
		missing = append(missing, "AIRTABLE_TABLE_NAME")
	}
	if len(missing) > 0 {
		return goerr.New("missing required configuration: "+strings.Join(missing, ", "),
			goerr.V("missing", missing))
	}
	return nil
}

// Configure creates the Airtable client
func (a *Airtable) Configure() (*airtable.Client, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return airtable.New(a.APIKey, a.BaseID, a.Table,
		airtable.WithBaseURL(a.BaseURL),
		airtable.WithRateLimit(a.RateLimit),
	), nil
}

// IsConfigured checks if Airtable is properly configured
func (a *Airtable) IsConfigured() bool {
	return a.Validate() == nil
}

// LogValue returns structured log value
func (a Airtable) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_key", a.APIKey != ""),
		slog.String("base_id", a.BaseID),
		slog.String("table", a.Table),
		slog.String("base_url", a.BaseURL),
		slog.Float64("rate_limit", a.RateLimit),
	)
}
