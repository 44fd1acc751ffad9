package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/techflow/pkg/domain/types"
)

// DetailTimeLayout is the layout of timestamps in report details
const DetailTimeLayout = "2006-01-02 15:04"

// Report is the result of one report run
type Report struct {
	ID          types.ReportID   `json:"id"`
	Date        types.ReportDate `json:"date"`
	GeneratedAt time.Time        `json:"generated_at"`
	ReportDate  string           `json:"report_date"`
	Period      string           `json:"period"`
	Metrics     Metrics          `json:"metrics"`
	Details     Details          `json:"details"`
}

// Metrics holds the weekly figures
type Metrics struct {
	NewRequestsThisWeek    int              `json:"new_requests_this_week"`
	ClosedRequestsThisWeek int              `json:"closed_requests_this_week"`
	AvgProcessingTimeHours float64          `json:"avg_processing_time_hours"`
	Top3Consultants        []ConsultantStat `json:"top_3_consultants"`
	InProgressCount        int              `json:"in_progress_count"`
	OverdueCount           int              `json:"overdue_count"`
	AvgReactionTimeHours   float64          `json:"avg_reaction_time_hours"`
	TotalRequests          int              `json:"total_requests"`
	ServiceStats           []ServiceStat    `json:"service_stats"`
	ConsultantWorkload     map[string]int   `json:"consultant_workload"`
}

// ConsultantStat is a consultant with the number of requests they closed
type ConsultantStat struct {
	Name        string `json:"name"`
	ClosedCount int    `json:"closed_count"`
}

// ServiceStat is the share of requests for one service
type ServiceStat struct {
	Service string  `json:"service"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// WorkloadEntry is one consultant's open request count
type WorkloadEntry struct {
	Name  string
	Count int
}

// Details lists the requests behind the weekly counts
type Details struct {
	NewRequests    []NewRequestDetail    `json:"new_requests"`
	ClosedRequests []ClosedRequestDetail `json:"closed_requests"`
}

// NewRequestDetail describes a request created within the window
type NewRequestDetail struct {
	RequestID string `json:"request_id"`
	Service   string `json:"service"`
	Assignee  string `json:"assignee"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ClosedRequestDetail describes a request closed within the window
type ClosedRequestDetail struct {
	RequestID string `json:"request_id"`
	Service   string `json:"service"`
	Assignee  string `json:"assignee"`
	ClosedAt  string `json:"closed_at"`
}

// WorkloadEntries returns the consultant workload ordered by count
// (descending) and name
func (m *Metrics) WorkloadEntries() []WorkloadEntry {
	entries := make([]WorkloadEntry, 0, len(m.ConsultantWorkload))
	for name, count := range m.ConsultantWorkload {
		entries = append(entries, WorkloadEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
