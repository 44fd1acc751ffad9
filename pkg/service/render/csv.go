package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/model"
)

// CSV writes the report as a sequence of labeled sections: header, main
// metrics, top consultants, services, workload, new and closed requests.
// Sections are separated by an empty row.
func CSV(w io.Writer, report *model.Report) error {
	cw := csv.NewWriter(w)
	m := report.Metrics
	itoa := strconv.Itoa

	rows := [][]string{
		{"TechFlow Consulting — Weekly Report"},
		{"Report Date", report.ReportDate},
		{"Period", report.Period},
		{},
		{"--- MAIN METRICS ---"},
		{"New requests this week", itoa(m.NewRequestsThisWeek)},
		{"Closed requests this week", itoa(m.ClosedRequestsThisWeek)},
		{"Average processing time (hours)", FormatNumber(m.AvgProcessingTimeHours)},
		{"Average reaction time (hours)", FormatNumber(m.AvgReactionTimeHours)},
		{"Requests in progress", itoa(m.InProgressCount)},
		{"Overdue requests (>24h)", itoa(m.OverdueCount)},
		{"Total requests", itoa(m.TotalRequests)},
		{},
		{"--- TOP-3 CONSULTANTS (closed requests) ---"},
		{"Consultant", "Closed requests"},
	}
	for _, c := range m.Top3Consultants {
		rows = append(rows, []string{c.Name, itoa(c.ClosedCount)})
	}

	rows = append(rows,
		[]string{},
		[]string{"--- SERVICE DISTRIBUTION ---"},
		[]string{"Service", "Requests", "Share of all requests"},
	)
	for _, s := range m.ServiceStats {
		rows = append(rows, []string{s.Service, itoa(s.Count), FormatNumber(s.Percent) + "%"})
	}

	rows = append(rows,
		[]string{},
		[]string{"--- CONSULTANT WORKLOAD (open requests) ---"},
		[]string{"Consultant", "Open requests"},
	)
	for _, e := range m.WorkloadEntries() {
		rows = append(rows, []string{e.Name, itoa(e.Count)})
	}

	rows = append(rows,
		[]string{},
		[]string{"--- NEW REQUESTS THIS WEEK ---"},
		[]string{"Request ID", "Service", "Consultant", "Status", "Created"},
	)
	for _, r := range report.Details.NewRequests {
		rows = append(rows, []string{r.RequestID, r.Service, r.Assignee, r.Status, r.CreatedAt})
	}

	rows = append(rows,
		[]string{},
		[]string{"--- CLOSED REQUESTS THIS WEEK ---"},
		[]string{"Request ID", "Service", "Consultant", "Closed"},
	)
	for _, r := range report.Details.ClosedRequests {
		rows = append(rows, []string{r.RequestID, r.Service, r.Assignee, r.ClosedAt})
	}

	if err := cw.WriteAll(rows); err != nil {
		return goerr.Wrap(err, "failed to write CSV")
	}
	return nil
}
