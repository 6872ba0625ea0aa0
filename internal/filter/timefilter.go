package filter

import (
	"time"

	"masalog-backend/internal/model"
)

// TimeFilterMode selects how record timestamps are bounded.
type TimeFilterMode string

const (
	TimeFilterAll    TimeFilterMode = "all"
	TimeFilterBefore TimeFilterMode = "before"
	TimeFilterAfter  TimeFilterMode = "after"
	TimeFilterRange  TimeFilterMode = "range"
)

// TimeFilter is the secondary predicate applied after key/value filtering.
// All comparisons are inclusive. Records whose timestamp cannot be parsed
// (including the invalid sentinel) are excluded by any bounded mode.
type TimeFilter struct {
	Mode   TimeFilterMode `json:"mode"`
	Before time.Time      `json:"before,omitempty"`
	After  time.Time      `json:"after,omitempty"`
	Start  time.Time      `json:"start,omitempty"`
	End    time.Time      `json:"end,omitempty"`
}

// ApplyTime keeps the records whose timestamp satisfies the filter.
func ApplyTime(records []model.LogRecord, tf TimeFilter, loc *time.Location) []model.LogRecord {
	if tf.Mode == "" || tf.Mode == TimeFilterAll {
		return records
	}

	kept := make([]model.LogRecord, 0, len(records))
	for _, rec := range records {
		t, err := time.ParseInLocation(model.TimestampLayout, rec.Timestamp, loc)
		if err != nil {
			continue
		}
		if tf.keeps(t) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func (tf TimeFilter) keeps(t time.Time) bool {
	switch tf.Mode {
	case TimeFilterBefore:
		return !t.After(tf.Before)
	case TimeFilterAfter:
		return !t.Before(tf.After)
	case TimeFilterRange:
		return !t.Before(tf.Start) && !t.After(tf.End)
	default:
		return true
	}
}

// ValidMode reports whether mode names a known time filter mode.
func ValidMode(mode TimeFilterMode) bool {
	switch mode {
	case TimeFilterAll, TimeFilterBefore, TimeFilterAfter, TimeFilterRange:
		return true
	}
	return false
}
