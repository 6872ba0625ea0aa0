package parser

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fastjson"

	"masalog-backend/internal/model"
)

const (
	payloadMarker = "POST Request Details "
	lineSuffix    = " []"

	unknownValue = "unknown"
)

// otdLiteralRegex captures the raw otd JSON string literal, including escape
// sequences, from the undecoded payload text.
var otdLiteralRegex = regexp.MustCompile(`"otd"\s*:\s*"((?:\\.|[^"\\])*)"`)

// timestampLayouts are tried in order. The upstream emits ISO-8601 with an
// offset, but zoneless variants show up in older logs.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Extractor turns raw response text into LogRecords. Lines look like
//
//	[<timestamp>] ... POST Request Details {<json>} []
//
// Anything else is skipped. The JSON span is bounded by the literal marker
// and the literal line-end suffix, so nested braces inside the payload do
// not cut the object short.
type Extractor struct {
	loc    *time.Location
	rawOTD bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRawOTD re-extracts the otd value from the raw JSON text so its
// original formatting survives decoding. Applies to display and export only.
func WithRawOTD(enabled bool) Option {
	return func(e *Extractor) {
		e.rawOTD = enabled
	}
}

func NewExtractor(loc *time.Location, opts ...Option) *Extractor {
	if loc == nil {
		loc = time.FixedZone("UTC+8", 8*60*60)
	}
	e := &Extractor{loc: loc}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns a single-pass cursor over the records in raw. The cursor
// is finite and cannot be restarted; call Extract again for a fresh pass.
func (e *Extractor) Extract(raw string) *Scan {
	return &Scan{e: e, rest: raw}
}

// ExtractAll drains a full pass eagerly.
func (e *Extractor) ExtractAll(raw string) []model.LogRecord {
	var records []model.LogRecord
	scan := e.Extract(raw)
	for scan.Next() {
		records = append(records, scan.Record())
	}
	return records
}

// Scan iterates the records of one raw text, bufio.Scanner style:
//
//	scan := extractor.Extract(text)
//	for scan.Next() {
//		rec := scan.Record()
//	}
type Scan struct {
	e      *Extractor
	rest   string
	done   bool
	rec    model.LogRecord
	parser fastjson.Parser
}

// Next advances to the next extractable record. Lines that do not match the
// expected shape are skipped silently.
func (s *Scan) Next() bool {
	for !s.done {
		line := s.nextLine()
		if rec, ok := s.parseLine(line); ok {
			s.rec = rec
			return true
		}
	}
	return false
}

// Record returns the record found by the last successful Next.
func (s *Scan) Record() model.LogRecord {
	return s.rec
}

func (s *Scan) nextLine() string {
	if i := strings.IndexByte(s.rest, '\n'); i >= 0 {
		line := s.rest[:i]
		s.rest = s.rest[i+1:]
		return strings.TrimSuffix(line, "\r")
	}
	line := s.rest
	s.rest = ""
	s.done = true
	return strings.TrimSuffix(line, "\r")
}

func (s *Scan) parseLine(line string) (model.LogRecord, bool) {
	if len(line) == 0 || line[0] != '[' {
		return model.LogRecord{}, false
	}
	tsEnd := strings.IndexByte(line, ']')
	if tsEnd < 0 {
		return model.LogRecord{}, false
	}
	rawTimestamp := line[1:tsEnd]

	markerAt := strings.Index(line[tsEnd:], payloadMarker)
	if markerAt < 0 {
		return model.LogRecord{}, false
	}
	jsonStart := tsEnd + markerAt + len(payloadMarker)

	// The payload runs from the marker to the literal trailing " []".
	// Bounding on the suffix instead of scanning for the first closing
	// brace keeps nested objects intact.
	if !strings.HasSuffix(line, lineSuffix) {
		return model.LogRecord{}, false
	}
	jsonEnd := len(line) - len(lineSuffix)
	if jsonStart >= jsonEnd || line[jsonStart] != '{' || line[jsonEnd-1] != '}' {
		return model.LogRecord{}, false
	}
	jsonText := line[jsonStart:jsonEnd]

	rec := model.LogRecord{
		Timestamp: s.e.formatTimestamp(rawTimestamp),
		UserAgent: unknownValue,
		IPAddress: unknownValue,
	}

	payload, err := s.parser.Parse(jsonText)
	if err != nil {
		// Matched shape with a broken payload still counts as a row,
		// so counts track the upstream line count.
		log.Debug().Err(err).Str("line", line).Msg("Payload is not valid JSON, emitting record with empty fields")
		return rec, true
	}

	if params := payload.GetObject("post_params"); params != nil {
		params.Visit(func(key []byte, v *fastjson.Value) {
			if v.Type() == fastjson.TypeNull {
				return
			}
			rec.Fields = append(rec.Fields, model.Field{
				Key:   string(key),
				Value: stringifyValue(v),
			})
		})
	}
	if ua := payload.GetStringBytes("user_agent"); ua != nil {
		rec.UserAgent = percentDecode(string(ua))
	}
	if ip := payload.GetStringBytes("ip_address"); ip != nil {
		rec.IPAddress = string(ip)
	}

	if s.e.rawOTD {
		// Reuses the scan parser, so all payload data must be copied
		// out before this point.
		rec.RawOTD = s.extractRawOTD(jsonText)
	}

	return rec, true
}

func (e *Extractor) formatTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, e.loc)
		if err == nil {
			return t.In(e.loc).Format(model.TimestampLayout)
		}
	}
	log.Debug().Str("timestamp", raw).Msg("Failed to parse log timestamp")
	return model.InvalidTimestamp
}

// extractRawOTD pulls the otd string literal straight out of the JSON text
// and decodes only the escapes, preserving formatting the full decode would
// normalize away.
func (s *Scan) extractRawOTD(jsonText string) string {
	m := otdLiteralRegex.FindStringSubmatch(jsonText)
	if m == nil {
		return ""
	}
	v, err := s.parser.Parse(`"` + m[1] + `"`)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to decode raw otd literal")
		return ""
	}
	return string(v.GetStringBytes())
}

// stringifyValue renders a payload value the way it is displayed: strings
// decoded, everything else as its JSON text.
func stringifyValue(v *fastjson.Value) string {
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes())
	}
	return string(v.MarshalTo(nil))
}

func percentDecode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
