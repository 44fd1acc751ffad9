package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ReportDateLayout is the layout of report dates used for file names and archive keys
const ReportDateLayout = "2006-01-02"

// ReportID represents a report run identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID using UUID v7
func NewReportID() (ReportID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate report ID")
	}
	return ReportID(id.String()), nil
}

// ReportDate represents the calendar day a report was generated for (YYYY-MM-DD)
type ReportDate string

// String returns the string representation
func (d ReportDate) String() string {
	return string(d)
}

// NewReportDate formats t as a ReportDate in t's location
func NewReportDate(t time.Time) ReportDate {
	return ReportDate(t.Format(ReportDateLayout))
}

// Validate checks the date is a well-formed calendar day
func (d ReportDate) Validate() error {
	if d == "" {
		return goerr.New("report date is empty")
	}
	if _, err := time.Parse(ReportDateLayout, string(d)); err != nil {
		return goerr.Wrap(err, "invalid report date", goerr.V("date", d))
	}
	return nil
}

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}
