package model

// InvalidTimestamp is stored when a matched line carries a timestamp that
// cannot be parsed. It sorts after every canonical timestamp.
const InvalidTimestamp = "invalid-timestamp"

// TimestampLayout is the canonical display format. Fixed-width and
// zero-padded, so lexicographic order equals chronological order.
const TimestampLayout = "2006-01-02 15:04:05"

// Field is one post-params key/value pair. Values are always strings;
// non-string JSON values are kept as their JSON text.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Fields preserves the key order of the source JSON object.
type Fields []Field

// Get returns the value for key and whether the key is present.
func (f Fields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// LogRecord is one extracted "POST Request Details" entry. Records are
// immutable once built; a fetch replaces the whole result set.
type LogRecord struct {
	Timestamp string `json:"timestamp"`
	Fields    Fields `json:"fields"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
	// RawOTD holds the otd value re-extracted from the raw JSON text, so
	// formatting that decoding would normalize away is preserved. Empty
	// when absent or when raw extraction is disabled.
	RawOTD string `json:"raw_otd,omitempty"`
}

// FieldValue returns the display value for key, preferring the raw otd
// capture over the decoded one. Absent keys read as the empty string.
func (r LogRecord) FieldValue(key string) string {
	if key == "otd" && r.RawOTD != "" {
		return r.RawOTD
	}
	v, _ := r.Fields.Get(key)
	return v
}
