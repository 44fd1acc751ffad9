package types

// Sentinel values substituted for missing record fields
const (
	UnknownStatus    = "Unknown"
	UnknownService   = "Unknown"
	UnassignedName   = "Unassigned"
	MissingRequestID = "N/A"
)

// RequestStatus represents the status of a support request as stored in the
// record source. The set is open-ended; only a few values carry meaning for
// the metrics.
type RequestStatus string

const (
	RequestStatusClosed     RequestStatus = "Closed"
	RequestStatusInProgress RequestStatus = "In progress"
	// RequestStatusOverdue is spelled as stored in the source table.
	RequestStatusOverdue RequestStatus = "More then 24 hours"
	RequestStatusUnknown RequestStatus = UnknownStatus
)

// String returns the string representation of the status
func (s RequestStatus) String() string {
	return string(s)
}
