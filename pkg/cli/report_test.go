package cli_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/techflow/pkg/cli"
	"github.com/secmon-lab/techflow/pkg/domain/model"
)

func summaryEntry(t *testing.T, report *model.Report) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	cli.LogReportSummary(slog.New(slog.NewJSONHandler(&buf, nil)), report)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	return entry
}

func TestLogReportSummary(t *testing.T) {
	report := &model.Report{
		Date:   "2026-10-19",
		Period: "2026-10-12 — 2026-10-19",
		Metrics: model.Metrics{
			NewRequestsThisWeek:    4,
			ClosedRequestsThisWeek: 3,
			AvgProcessingTimeHours: 12.5,
			AvgReactionTimeHours:   0.67,
			InProgressCount:        2,
			OverdueCount:           1,
			TotalRequests:          9,
			Top3Consultants: []model.ConsultantStat{
				{Name: "Iryna", ClosedCount: 2},
				{Name: "Olena", ClosedCount: 1},
			},
		},
	}

	entry := summaryEntry(t, report)
	gt.Equal[any](t, entry["msg"], "Weekly report completed")
	gt.Equal[any](t, entry["period"], "2026-10-12 — 2026-10-19")
	gt.Equal[any](t, entry["new_requests_this_week"], float64(4))
	gt.Equal[any](t, entry["closed_requests_this_week"], float64(3))
	gt.Equal[any](t, entry["avg_processing_time_hours"], 12.5)
	gt.Equal[any](t, entry["avg_reaction_time_hours"], 0.67)
	gt.Equal[any](t, entry["in_progress_count"], float64(2))
	gt.Equal[any](t, entry["overdue_count"], float64(1))
	gt.Equal[any](t, entry["total_requests"], float64(9))
	gt.Equal[any](t, entry["top_3_consultants"], []any{"1. Iryna: 2 closed", "2. Olena: 1 closed"})
}

func TestLogReportSummary_NoClosedRequests(t *testing.T) {
	report := &model.Report{
		Date:    "2026-10-19",
		Period:  "2026-10-12 — 2026-10-19",
		Metrics: model.Metrics{Top3Consultants: []model.ConsultantStat{}},
	}

	entry := summaryEntry(t, report)
	gt.Equal[any](t, entry["top_3_consultants"], []any{"no closed requests in the period"})
}
