package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/service/render"
	"github.com/slack-go/slack"
)

var medals = []string{"🥇", "🥈", "🥉"}

// BuildReportBlocks builds the summary message of a report. dashboardURL is
// linked at the bottom when not empty.
func BuildReportBlocks(report *model.Report, dashboardURL string) []slack.Block {
	m := report.Metrics

	field := func(label, value string) *slack.TextBlockObject {
		return slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%s*\n%s", label, value), false, false)
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "📊 TechFlow weekly report", true, false),
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("Period: %s | Generated: %s", report.Period, report.ReportDate), false, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			field("New requests", fmt.Sprint(m.NewRequestsThisWeek)),
			field("Closed requests", fmt.Sprint(m.ClosedRequestsThisWeek)),
			field("Avg processing time", render.FormatNumber(m.AvgProcessingTimeHours)+"h"),
			field("Avg reaction time", render.FormatNumber(m.AvgReactionTimeHours)+"h"),
			field("In progress", fmt.Sprint(m.InProgressCount)),
			field("Overdue (>24h)", fmt.Sprint(m.OverdueCount)),
			field("Total requests", fmt.Sprint(m.TotalRequests)),
		}, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "*🏆 Top consultants*\n"+topConsultantsText(m.Top3Consultants), false, false),
			nil, nil,
		),
	}

	if dashboardURL != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("<%s|Open dashboard>", dashboardURL), false, false),
		))
	}

	return blocks
}

func topConsultantsText(stats []model.ConsultantStat) string {
	if len(stats) == 0 {
		return "No closed requests"
	}

	lines := make([]string, 0, len(stats))
	for i, c := range stats {
		prefix := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			prefix = medals[i]
		}
		lines = append(lines, fmt.Sprintf("%s %s: %d closed", prefix, c.Name, c.ClosedCount))
	}
	return strings.Join(lines, "\n")
}
