package parser_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masalog-backend/internal/model"
	"masalog-backend/internal/parser"
)

func taipei(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.FixedZone("UTC+8", 8*60*60)
	}
	return loc
}

func TestExtractor_Extract(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t))

	tests := []struct {
		name     string
		line     string
		expected []model.LogRecord
	}{
		{
			name: "Valid Line",
			line: `[2024-01-01T10:00:00+08:00] some.prefix POST Request Details {"post_params": {"a": "1"}, "user_agent": "x", "ip_address": "1.2.3.4"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					Fields:    model.Fields{{Key: "a", Value: "1"}},
					UserAgent: "x",
					IPAddress: "1.2.3.4",
				},
			},
		},
		{
			name: "Timezone Conversion",
			line: `[2024-01-01T02:00:00Z] x POST Request Details {"post_params": {}, "user_agent": "x", "ip_address": "1.2.3.4"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					UserAgent: "x",
					IPAddress: "1.2.3.4",
				},
			},
		},
		{
			name: "Nested Braces In Payload",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"otd": "{\"inner\": {\"deep\": 1}}", "b": "2"}, "user_agent": "ua", "ip_address": "5.6.7.8"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					Fields: model.Fields{
						{Key: "otd", Value: `{"inner": {"deep": 1}}`},
						{Key: "b", Value: "2"},
					},
					UserAgent: "ua",
					IPAddress: "5.6.7.8",
				},
			},
		},
		{
			name: "Non String Values Stringified",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"n": 42, "flag": true, "obj": {"k": 1}}, "user_agent": "ua", "ip_address": "ip"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					Fields: model.Fields{
						{Key: "n", Value: "42"},
						{Key: "flag", Value: "true"},
						{Key: "obj", Value: `{"k":1}`},
					},
					UserAgent: "ua",
					IPAddress: "ip",
				},
			},
		},
		{
			name: "Null Params Absent Not Kept",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"a": null, "b": "2"}, "user_agent": "ua", "ip_address": "ip"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					Fields:    model.Fields{{Key: "b", Value: "2"}},
					UserAgent: "ua",
					IPAddress: "ip",
				},
			},
		},
		{
			name: "Percent Encoded User Agent",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {}, "user_agent": "Mozilla%2F5.0%20test", "ip_address": "ip"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					UserAgent: "Mozilla/5.0 test",
					IPAddress: "ip",
				},
			},
		},
		{
			name: "Plus In User Agent Survives Decoding",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {}, "user_agent": "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "ip_address": "ip"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					UserAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
					IPAddress: "ip",
				},
			},
		},
		{
			name: "Missing Payload Keys Default",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"something_else": 1} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					UserAgent: "unknown",
					IPAddress: "unknown",
				},
			},
		},
		{
			name: "Invalid Timestamp Keeps Record",
			line: `[not-a-timestamp] x POST Request Details {"post_params": {"a": "1"}, "user_agent": "ua", "ip_address": "ip"} []`,
			expected: []model.LogRecord{
				{
					Timestamp: model.InvalidTimestamp,
					Fields:    model.Fields{{Key: "a", Value: "1"}},
					UserAgent: "ua",
					IPAddress: "ip",
				},
			},
		},
		{
			name: "Invalid JSON Keeps Record With Empty Fields",
			line: `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": broken} []`,
			expected: []model.LogRecord{
				{
					Timestamp: "2024-01-01 10:00:00",
					UserAgent: "unknown",
					IPAddress: "unknown",
				},
			},
		},
		{
			name:     "No Marker Skipped",
			line:     `[2024-01-01T10:00:00+08:00] GET Request Details {"post_params": {}} []`,
			expected: nil,
		},
		{
			name:     "No Trailing Suffix Skipped",
			line:     `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {}}`,
			expected: nil,
		},
		{
			name:     "Not A Log Line",
			line:     "plain text without any markers",
			expected: nil,
		},
		{
			name:     "Empty Line",
			line:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := extractor.ExtractAll(tt.line)
			assert.Equal(t, tt.expected, records)
		})
	}
}

func TestExtractor_FieldOrderPreserved(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t))

	line := `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"z": "1", "a": "2", "m": "3"}, "user_agent": "ua", "ip_address": "ip"} []`
	records := extractor.ExtractAll(line)
	require.Len(t, records, 1)

	keys := make([]string, 0, len(records[0].Fields))
	for _, f := range records[0].Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestExtractor_MultipleLines(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t))

	raw := strings.Join([]string{
		`[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"a": "1"}, "user_agent": "ua", "ip_address": "ip"} []`,
		`garbage line`,
		`[2024-01-01T11:00:00+08:00] x POST Request Details {"post_params": {"a": "2"}, "user_agent": "ua", "ip_address": "ip"} []`,
		``,
	}, "\n")

	records := extractor.ExtractAll(raw)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01 10:00:00", records[0].Timestamp)
	assert.Equal(t, "2024-01-01 11:00:00", records[1].Timestamp)
}

func TestExtractor_CRLF(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t))

	raw := "[2024-01-01T10:00:00+08:00] x POST Request Details {\"post_params\": {\"a\": \"1\"}, \"user_agent\": \"ua\", \"ip_address\": \"ip\"} []\r\n"
	records := extractor.ExtractAll(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-01 10:00:00", records[0].Timestamp)
}

func TestExtractor_RawOTD(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t), parser.WithRawOTD(true))

	line := `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"otd": "value with 1e2 \"quotes\""}, "user_agent": "ua", "ip_address": "ip"} []`
	records := extractor.ExtractAll(line)
	require.Len(t, records, 1)
	assert.Equal(t, `value with 1e2 "quotes"`, records[0].RawOTD)
	assert.Equal(t, `value with 1e2 "quotes"`, records[0].FieldValue("otd"))

	withoutOTD := `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"a": "1"}, "user_agent": "ua", "ip_address": "ip"} []`
	records = extractor.ExtractAll(withoutOTD)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].RawOTD)
}

func TestExtractor_Idempotent(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t))

	raw := strings.Join([]string{
		`[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"a": "1"}, "user_agent": "ua", "ip_address": "ip"} []`,
		`[bad-ts] x POST Request Details {"post_params": {"b": "2"}, "user_agent": "ua", "ip_address": "ip"} []`,
	}, "\n")

	first := extractor.ExtractAll(raw)
	second := extractor.ExtractAll(raw)
	assert.Equal(t, first, second)
}

func TestScan_NonRestartable(t *testing.T) {
	extractor := parser.NewExtractor(taipei(t))

	line := `[2024-01-01T10:00:00+08:00] x POST Request Details {"post_params": {"a": "1"}, "user_agent": "ua", "ip_address": "ip"} []`
	scan := extractor.Extract(line)

	require.True(t, scan.Next())
	assert.Equal(t, "2024-01-01 10:00:00", scan.Record().Timestamp)
	assert.False(t, scan.Next())
	assert.False(t, scan.Next())
}
