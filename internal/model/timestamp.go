package model

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts covers the formats the portal backend emits: RFC3339 with
// and without an offset, and bare dates for fields like meal_date.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a portal wire timestamp. The backend serializes naive ISO-8601
// strings, so a plain time.Time would fail to unmarshal.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON parses any of the portal's timestamp formats. Null and empty
// strings yield the zero Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON emits RFC3339, or null for the zero value.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
