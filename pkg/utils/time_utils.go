package utils

import (
	"strings"
	"time"
)

// ParseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates, the two
// shapes clients send for policy and incident dates.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
