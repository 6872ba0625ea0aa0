package util

import (
	"fmt"
	"strconv"
	"time"

	"masalog-backend/internal/model"
)

// ParseTimeFlexible accepts RFC3339 (with or without fractional seconds),
// epoch milliseconds, or the viewer's canonical "YYYY-MM-DD HH:MM:SS"
// interpreted in loc.
func ParseTimeFlexible(timeStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, timeStr)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, timeStr) // Try without nano
	if err == nil {
		return t, nil
	}

	if loc != nil {
		t, err = time.ParseInLocation(model.TimestampLayout, timeStr, loc)
		if err == nil {
			return t, nil
		}
	}

	// Try parsing as epoch milliseconds
	ms, err := strconv.ParseInt(timeStr, 10, 64)
	if err == nil {
		return time.UnixMilli(ms), nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
}
