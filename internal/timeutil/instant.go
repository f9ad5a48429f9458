package timeutil

import (
	"fmt"
	"time"
)

// ParseInstant parses a client-supplied reference instant. RFC3339 with an
// explicit offset is preferred (what the form captures); date-only and
// offset-less layouts are accepted in UTC as a fallback.
func ParseInstant(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("instant value is required")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse instant: %s", value)
}
