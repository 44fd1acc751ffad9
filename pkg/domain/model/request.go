package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/techflow/pkg/domain/types"
)

// RawRecord is a record as returned by the record source
type RawRecord struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// Request is a support request normalized from a RawRecord. It is built once
// per record and not modified afterwards.
type Request struct {
	ID          string
	Status      types.RequestStatus
	Assignee    string
	Service     string
	Description string
	CreatedAt   *time.Time
	AssignedAt  *time.Time
	ClosedAt    *time.Time
}

// NewRequest normalizes a raw record. Missing or malformed fields fall back to
// sentinel values and never cause an error.
func NewRequest(record RawRecord, fields FieldMapping) *Request {
	f := record.Fields

	return &Request{
		ID:          scalarField(f, fields.RequestID, types.MissingRequestID),
		Status:      types.RequestStatus(scalarField(f, fields.Status, types.UnknownStatus)),
		Assignee:    firstOfField(f, fields.AssigneeName, types.UnassignedName),
		Service:     firstOfField(f, fields.ServiceName, types.UnknownService),
		Description: scalarField(f, fields.Description, ""),
		CreatedAt:   timeField(f, fields.CreatedAt),
		AssignedAt:  timeField(f, fields.AssignedAt),
		ClosedAt:    timeField(f, fields.ClosedAt),
	}
}

// IsAssigned reports whether the request has a consultant
func (r *Request) IsAssigned() bool {
	return r.Assignee != types.UnassignedName
}

// scalarField returns the field as text, or def when it is missing or empty
func scalarField(fields map[string]any, key, def string) string {
	if s := formatValue(fields[key]); s != "" {
		return s
	}
	return def
}

// firstOfField handles lookup fields, which arrive as lists; the first
// element is used. A plain value is taken whole.
func firstOfField(fields map[string]any, key, def string) string {
	switch v := fields[key].(type) {
	case []any:
		if len(v) > 0 {
			if s := formatValue(v[0]); s != "" {
				return s
			}
		}
		return def
	case []string:
		if len(v) > 0 && v[0] != "" {
			return v[0]
		}
		return def
	default:
		return scalarField(fields, key, def)
	}
}

func timeField(fields map[string]any, key string) *time.Time {
	s, ok := fields[key].(string)
	if !ok {
		return nil
	}
	return types.ParseTimestamp(s)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	case map[string]any, []any:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}
