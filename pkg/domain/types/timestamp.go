package types

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order; the first successful parse wins.
// Values without a zone designator are taken as UTC; values carrying a
// numeric offset match no layout and are treated as absent.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts a record date string into a UTC time. It never
// fails: an empty or unparsable value yields nil.
func ParseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		t = t.UTC()
		return &t
	}

	return nil
}
