package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/types"
)

// FieldMapping names the record source fields the report reads
type FieldMapping struct {
	RequestID    string `yaml:"request_id"`
	Status       string `yaml:"status"`
	AssigneeName string `yaml:"assignee_name"`
	ServiceName  string `yaml:"service_name"`
	Description  string `yaml:"description"`
	CreatedAt    string `yaml:"created_at"`
	AssignedAt   string `yaml:"assigned_at"`
	ClosedAt     string `yaml:"closed_at"`
}

// StatusLabels holds the status values that carry meaning for the metrics
type StatusLabels struct {
	Closed     types.RequestStatus `yaml:"closed"`
	InProgress types.RequestStatus `yaml:"in_progress"`
	Overdue    types.RequestStatus `yaml:"overdue"`
}

// Config represents the record layout configuration
type Config struct {
	Fields   FieldMapping `yaml:"fields"`
	Statuses StatusLabels `yaml:"statuses"`
}

// DefaultConfig returns the layout of the Requests table
func DefaultConfig() *Config {
	return &Config{
		Fields: FieldMapping{
			RequestID:    "Request ID",
			Status:       "Status",
			AssigneeName: "Assignee Name",
			ServiceName:  "Service Name",
			Description:  "Description",
			CreatedAt:    "Created At",
			AssignedAt:   "Assigned At",
			ClosedAt:     "Closed At",
		},
		Statuses: StatusLabels{
			Closed:     types.RequestStatusClosed,
			InProgress: types.RequestStatusInProgress,
			Overdue:    types.RequestStatusOverdue,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	fields := map[string]string{
		"request_id":    c.Fields.RequestID,
		"status":        c.Fields.Status,
		"assignee_name": c.Fields.AssigneeName,
		"service_name":  c.Fields.ServiceName,
		"description":   c.Fields.Description,
		"created_at":    c.Fields.CreatedAt,
		"assigned_at":   c.Fields.AssignedAt,
		"closed_at":     c.Fields.ClosedAt,
	}
	for key, name := range fields {
		if name == "" {
			return goerr.New("field name is required", goerr.V("field", key))
		}
	}

	statuses := map[string]types.RequestStatus{
		"closed":      c.Statuses.Closed,
		"in_progress": c.Statuses.InProgress,
		"overdue":     c.Statuses.Overdue,
	}
	seen := make(map[types.RequestStatus]string)
	for key, status := range statuses {
		if status == "" {
			return goerr.New("status label is required", goerr.V("status", key))
		}
		if other, ok := seen[status]; ok {
			return goerr.New("duplicate status label",
				goerr.V("label", status),
				goerr.V("statuses", []string{other, key}))
		}
		seen[status] = key
	}

	return nil
}
