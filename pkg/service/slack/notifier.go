package slack

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Notifier posts report summaries to a Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID types.ChannelID
	baseURL   string
}

// NotifierOption configures Notifier
type NotifierOption func(*Notifier)

// WithBaseURL links the summary to the dashboard served under baseURL
func WithBaseURL(baseURL string) NotifierOption {
	return func(n *Notifier) {
		n.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewNotifier creates a Notifier for the channel
func NewNotifier(client interfaces.SlackClient, channelID types.ChannelID, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		client:    client,
		channelID: channelID,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// DashboardURL returns the link to the report dashboard, or "" without a base URL
func (n *Notifier) DashboardURL(report *model.Report) string {
	if n.baseURL == "" {
		return ""
	}
	return n.baseURL + "/reports/" + report.Date.String()
}

// NotifyReport posts the report summary
func (n *Notifier) NotifyReport(ctx context.Context, report *model.Report) error {
	blocks := BuildReportBlocks(report, n.DashboardURL(report))

	_, ts, err := n.client.PostMessageContext(ctx, n.channelID.String(),
		slack.MsgOptionText("TechFlow weekly report ("+report.Period+")", false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post report summary",
			goerr.V("channel", n.channelID),
			goerr.V("reportID", report.ID))
	}

	ctxlog.From(ctx).Info("Report summary posted to Slack",
		"channel", n.channelID,
		"ts", ts)
	return nil
}
