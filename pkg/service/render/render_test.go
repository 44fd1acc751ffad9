package render_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"github.com/secmon-lab/techflow/pkg/service/render"
)

func newTestReport() *model.Report {
	return &model.Report{
		ID:          types.ReportID("0190b0a6-0000-7000-8000-000000000001"),
		Date:        types.ReportDate("2026-10-19"),
		GeneratedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
		ReportDate:  "2026-10-19 12:00 (Kyiv)",
		Period:      "2026-10-12 — 2026-10-19",
		Metrics: model.Metrics{
			NewRequestsThisWeek:    1,
			ClosedRequestsThisWeek: 1,
			AvgProcessingTimeHours: 24,
			Top3Consultants:        []model.ConsultantStat{{Name: "Олена", ClosedCount: 1}},
			InProgressCount:        1,
			OverdueCount:           0,
			AvgReactionTimeHours:   0.67,
			TotalRequests:          2,
			ServiceStats: []model.ServiceStat{
				{Service: "Audit", Count: 1, Percent: 50},
				{Service: "Tax & Legal", Count: 1, Percent: 50},
			},
			ConsultantWorkload: map[string]int{"Taras": 1, "Iryna": 3},
		},
		Details: model.Details{
			NewRequests: []model.NewRequestDetail{
				{RequestID: "A", Service: "Audit", Assignee: "Олена", Status: "Closed", CreatedAt: "2026-10-17 09:00"},
			},
			ClosedRequests: []model.ClosedRequestDetail{
				{RequestID: "A", Service: "Audit", Assignee: "Олена", ClosedAt: "2026-10-18 09:00"},
			},
		},
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, render.JSON(&buf, newTestReport())).Required()

	out := buf.String()
	gt.S(t, out).Contains(`  "report_date": "2026-10-19 12:00 (Kyiv)"`)
	gt.S(t, out).Contains(`"name": "Олена"`)
	gt.S(t, out).Contains(`"service": "Tax & Legal"`)

	var decoded model.Report
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &decoded)).Required()
	gt.Equal(t, decoded.Metrics.ConsultantWorkload["Iryna"], 3)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, render.CSV(&buf, newTestReport())).Required()

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	gt.NoError(t, err).Required()

	gt.Equal(t, rows[0], []string{"TechFlow Consulting — Weekly Report"})
	gt.Equal(t, rows[1], []string{"Report Date", "2026-10-19 12:00 (Kyiv)"})
	gt.Equal(t, rows[2], []string{"Period", "2026-10-12 — 2026-10-19"})

	find := func(label string) int {
		for i, row := range rows {
			if len(row) > 0 && row[0] == label {
				return i
			}
		}
		t.Fatalf("row %q not found", label)
		return -1
	}

	gt.Equal(t, rows[find("Average processing time (hours)")][1], "24.0")
	gt.Equal(t, rows[find("Average reaction time (hours)")][1], "0.67")

	top := find("--- TOP-3 CONSULTANTS (closed requests) ---")
	gt.Equal(t, rows[top+2], []string{"Олена", "1"})

	svc := find("--- SERVICE DISTRIBUTION ---")
	gt.Equal(t, rows[svc+2], []string{"Audit", "1", "50.0%"})
	gt.Equal(t, rows[svc+3], []string{"Tax & Legal", "1", "50.0%"})

	wl := find("--- CONSULTANT WORKLOAD (open requests) ---")
	gt.Equal(t, rows[wl+2], []string{"Iryna", "3"})
	gt.Equal(t, rows[wl+3], []string{"Taras", "1"})

	newReq := find("--- NEW REQUESTS THIS WEEK ---")
	gt.Equal(t, rows[newReq+2], []string{"A", "Audit", "Олена", "Closed", "2026-10-17 09:00"})

	closed := find("--- CLOSED REQUESTS THIS WEEK ---")
	gt.Equal(t, rows[closed+2], []string{"A", "Audit", "Олена", "2026-10-18 09:00"})
	gt.Equal(t, len(rows), closed+3)
}

func TestDashboard(t *testing.T) {
	report := newTestReport()
	report.Metrics.ServiceStats[0].Service = "</script><script>alert(1)</script>"

	var buf bytes.Buffer
	gt.NoError(t, render.Dashboard(&buf, report)).Required()

	out := buf.String()
	gt.S(t, out).Contains("<title>TechFlow — Dashboard (2026-10-12 — 2026-10-19)</title>")
	gt.S(t, out).Contains("const DATA = ")
	gt.S(t, out).Contains(`"new_requests_this_week":1`)
	gt.S(t, out).Contains("chart.umd.min.js")
	gt.False(t, strings.Contains(out, "</script><script>alert(1)"))
}

func TestEmailHTML(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		body, err := render.EmailHTML(newTestReport())
		gt.NoError(t, err).Required()

		gt.S(t, body).Contains("<strong>Period:</strong> 2026-10-12 — 2026-10-19")
		gt.S(t, body).Contains("<tr><td>1</td><td>Олена</td><td>1</td></tr>")
		gt.S(t, body).Contains("<tr><td>Iryna</td><td>3</td></tr>")
		gt.S(t, body).Contains("<tr><td>Tax &amp; Legal</td><td>1</td><td>50.0%</td></tr>")
		gt.S(t, body).Contains("24.0h")
		gt.False(t, strings.Contains(body, "No closed requests"))
	})

	t.Run("empty tables show placeholders", func(t *testing.T) {
		report := newTestReport()
		report.Metrics.Top3Consultants = []model.ConsultantStat{}
		report.Metrics.ConsultantWorkload = map[string]int{}

		body, err := render.EmailHTML(report)
		gt.NoError(t, err).Required()

		gt.S(t, body).Contains(`<td colspan="3">No closed requests</td>`)
		gt.S(t, body).Contains(`<td colspan="2">No open requests</td>`)
	})
}

func TestWriteFiles(t *testing.T) {
	root := t.TempDir()

	files, err := render.WriteFiles(root, newTestReport())
	gt.NoError(t, err).Required()

	dir := filepath.Join(root, "2026-10-19")
	gt.Equal(t, files.JSON, filepath.Join(dir, "techflow_report_2026-10-19.json"))
	gt.Equal(t, files.CSV, filepath.Join(dir, "techflow_report_2026-10-19.csv"))
	gt.Equal(t, files.Dashboard, filepath.Join(dir, "techflow_dashboard_2026-10-19.html"))
	gt.Equal(t, files.Paths(), []string{files.CSV, files.JSON, files.Dashboard})

	for _, path := range files.Paths() {
		info, err := os.Stat(path)
		gt.NoError(t, err).Required()
		gt.True(t, info.Size() > 0)
	}

	t.Run("invalid date", func(t *testing.T) {
		report := newTestReport()
		report.Date = ""
		_, err := render.WriteFiles(root, report)
		gt.Error(t, err)
	})
}

func TestFormatNumber(t *testing.T) {
	gt.Equal(t, render.FormatNumber(24), "24.0")
	gt.Equal(t, render.FormatNumber(12.5), "12.5")
	gt.Equal(t, render.FormatNumber(0.67), "0.67")
	gt.Equal(t, render.FormatNumber(0), "0.0")
}
