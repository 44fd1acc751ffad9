package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	slackSvc "github.com/secmon-lab/techflow/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post the report summary",
			Category:    "Slack",
			Sources:     cli.EnvVars("TECHFLOW_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving the report summary",
			Category:    "Slack",
			Sources:     cli.EnvVars("TECHFLOW_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// Configure creates the Slack notifier after checking the token, or returns
// nil when Slack is not configured
func (s *Slack) Configure(ctx context.Context, dashboardBaseURL string) (interfaces.Notifier, error) {
	logger := ctxlog.From(ctx)

	if !s.IsConfigured() {
		if s.OAuthToken != "" || s.Channel != "" {
			logger.Warn("Slack needs both an OAuth token and a channel, skipping notifications")
		}
		return nil, nil
	}

	client := slackSvc.New(s.OAuthToken)
	auth, err := client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify Slack token")
	}
	logger.Info("Slack configured",
		"team", auth.Team,
		"bot_user", auth.User,
		"channel", s.Channel,
	)

	return slackSvc.NewNotifier(client, types.ChannelID(s.Channel),
		slackSvc.WithBaseURL(dashboardBaseURL),
	), nil
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
