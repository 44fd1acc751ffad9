package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
)

const topConsultantsLimit = 3

// WindowStart returns the start of the weekly window ending at now. The week
// is counted in calendar days of now's location, so a daylight saving change
// inside the week shifts the start by the offset difference.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -7)
}

// CalculateMetrics builds the weekly report from raw records. now sets both
// the end of the window and the time zone used for report_date and period.
// The result has no ID; the caller assigns one.
func CalculateMetrics(records []model.RawRecord, now time.Time, cfg *model.Config) *model.Report {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	weekAgo := WindowStart(now)

	requests := lo.Map(records, func(record model.RawRecord, _ int) *model.Request {
		return model.NewRequest(record, cfg.Fields)
	})

	newThisWeek := lo.Filter(requests, func(r *model.Request, _ int) bool {
		return inWindow(r.CreatedAt, weekAgo)
	})
	closedThisWeek := lo.Filter(requests, func(r *model.Request, _ int) bool {
		return inWindow(r.ClosedAt, weekAgo)
	})

	processingHours := lo.FilterMap(requests, func(r *model.Request, _ int) (float64, bool) {
		return elapsedHours(r.CreatedAt, r.ClosedAt)
	})
	reactionHours := lo.FilterMap(requests, func(r *model.Request, _ int) (float64, bool) {
		return elapsedHours(r.CreatedAt, r.AssignedAt)
	})

	statuses := cfg.Statuses
	closedBy := lo.CountValuesBy(
		lo.Filter(requests, func(r *model.Request, _ int) bool {
			return r.Status == statuses.Closed && r.IsAssigned()
		}),
		func(r *model.Request) string { return r.Assignee },
	)
	openBy := lo.CountValuesBy(
		lo.Filter(requests, func(r *model.Request, _ int) bool {
			return r.Status != statuses.Closed && r.Status != statuses.Overdue && r.IsAssigned()
		}),
		func(r *model.Request) string { return r.Assignee },
	)

	return &model.Report{
		Date:        types.NewReportDate(now),
		GeneratedAt: now,
		ReportDate:  fmt.Sprintf("%s (%s)", now.Format("2006-01-02 15:04"), zoneLabel(now.Location())),
		Period:      fmt.Sprintf("%s — %s", weekAgo.Format(types.ReportDateLayout), now.Format(types.ReportDateLayout)),
		Metrics: model.Metrics{
			NewRequestsThisWeek:    len(newThisWeek),
			ClosedRequestsThisWeek: len(closedThisWeek),
			AvgProcessingTimeHours: averageHours(processingHours),
			Top3Consultants:        topConsultants(closedBy, topConsultantsLimit),
			InProgressCount: lo.CountBy(requests, func(r *model.Request) bool {
				return r.Status == statuses.InProgress
			}),
			OverdueCount: lo.CountBy(requests, func(r *model.Request) bool {
				return r.Status == statuses.Overdue
			}),
			AvgReactionTimeHours: averageHours(reactionHours),
			TotalRequests:        len(requests),
			ServiceStats:         serviceStats(requests),
			ConsultantWorkload:   openBy,
		},
		Details: model.Details{
			NewRequests: lo.Map(newThisWeek, func(r *model.Request, _ int) model.NewRequestDetail {
				return model.NewRequestDetail{
					RequestID: r.ID,
					Service:   r.Service,
					Assignee:  r.Assignee,
					Status:    r.Status.String(),
					CreatedAt: r.CreatedAt.Format(model.DetailTimeLayout),
				}
			}),
			ClosedRequests: lo.Map(closedThisWeek, func(r *model.Request, _ int) model.ClosedRequestDetail {
				return model.ClosedRequestDetail{
					RequestID: r.ID,
					Service:   r.Service,
					Assignee:  r.Assignee,
					ClosedAt:  r.ClosedAt.Format(model.DetailTimeLayout),
				}
			}),
		},
	}
}

// inWindow reports whether t is present and not before the window start
func inWindow(t *time.Time, weekAgo time.Time) bool {
	return t != nil && !t.Before(weekAgo)
}

func elapsedHours(from, to *time.Time) (float64, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	return to.Sub(*from).Hours(), true
}

// averageHours returns the mean rounded to 2 decimals, or 0 with no samples
func averageHours(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return roundTo(lo.Sum(samples)/float64(len(samples)), 2)
}

// topConsultants orders by closed count descending, then by name
func topConsultants(closedBy map[string]int, limit int) []model.ConsultantStat {
	stats := lo.MapToSlice(closedBy, func(name string, count int) model.ConsultantStat {
		return model.ConsultantStat{Name: name, ClosedCount: count}
	})
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].ClosedCount != stats[j].ClosedCount {
			return stats[i].ClosedCount > stats[j].ClosedCount
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// serviceStats orders by count descending, then by service name
func serviceStats(requests []*model.Request) []model.ServiceStat {
	total := len(requests)
	counts := lo.CountValuesBy(requests, func(r *model.Request) string { return r.Service })

	stats := lo.MapToSlice(counts, func(service string, count int) model.ServiceStat {
		return model.ServiceStat{
			Service: service,
			Count:   count,
			Percent: roundTo(float64(count)*100/float64(total), 1),
		}
	})
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Service < stats[j].Service
	})
	return stats
}

// roundTo rounds half away from zero
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// zoneLabel turns "Europe/Kyiv" into "Kyiv"
func zoneLabel(loc *time.Location) string {
	name := loc.String()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
