package repository

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
)

// Memory implements ReportRepository with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	reports map[types.ReportDate]*model.Report
}

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		reports: make(map[types.ReportDate]*model.Report),
	}
}

// PutReport saves a report, replacing the report of the same date
func (m *Memory) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if err := report.Date.Validate(); err != nil {
		return goerr.Wrap(err, "invalid report")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports[report.Date] = cloneReport(report)
	return nil
}

// GetReport retrieves the report of a date
func (m *Memory) GetReport(ctx context.Context, date types.ReportDate) (*model.Report, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	report, exists := m.reports[date]
	if !exists {
		return nil, goerr.Wrap(model.ErrReportNotFound, "failed to get report", goerr.V("date", date))
	}

	return cloneReport(report), nil
}

// GetLatestReport retrieves the report with the newest date
func (m *Memory) GetLatestReport(ctx context.Context) (*model.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *model.Report
	for _, report := range m.reports {
		if latest == nil || report.Date > latest.Date {
			latest = report
		}
	}
	if latest == nil {
		return nil, goerr.Wrap(model.ErrReportNotFound, "no report archived")
	}

	return cloneReport(latest), nil
}

// ListReportDates returns archived dates, newest first
func (m *Memory) ListReportDates(ctx context.Context) ([]types.ReportDate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dates := slices.Collect(maps.Keys(m.reports))
	sort.Slice(dates, func(i, j int) bool {
		return dates[i] > dates[j]
	})
	if dates == nil {
		dates = []types.ReportDate{}
	}
	return dates, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}

// Clear removes all reports (for testing)
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports = make(map[types.ReportDate]*model.Report)
}

// cloneReport copies the report so callers cannot modify stored state
func cloneReport(report *model.Report) *model.Report {
	c := *report
	c.Metrics.Top3Consultants = slices.Clone(report.Metrics.Top3Consultants)
	c.Metrics.ServiceStats = slices.Clone(report.Metrics.ServiceStats)
	c.Metrics.ConsultantWorkload = maps.Clone(report.Metrics.ConsultantWorkload)
	c.Details.NewRequests = slices.Clone(report.Details.NewRequests)
	c.Details.ClosedRequests = slices.Clone(report.Details.ClosedRequests)
	return &c
}

var _ interfaces.ReportRepository = (*Memory)(nil)
