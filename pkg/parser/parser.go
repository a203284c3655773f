// Package parser turns access-log text into core.LogRecord values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/modoterra/logtally/pkg/core"
)

// MaxRecords is the default number of records kept from the head of a file.
const MaxRecords = 20

// TimestampLayout is the layout of the leading date/time field.
const TimestampLayout = "2006-01-02 15:04 -07:00"

// lineRe matches a request line:
// 2024-01-01 10:05 +00:00: app [123] "GET /foo HTTP/1.1" 200 -
//
// Submatches: 1 timestamp, 2 bracketed id, 3 method, 4 path, 5 three-digit code.
var lineRe = regexp.MustCompile(
	`(\d{4}-\d{2}-\d{2} \d{2}:\d{2} \+\d{2}:\d{2}): .*? (?:\[(\d+)\] )?"(\S+) (\S+) .*?" (\d{3}) .*?`,
)

// ParseLine extracts a record from a single line.
// It returns false when the line does not match; that is not an error.
func ParseLine(line string) (core.LogRecord, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return core.LogRecord{}, false
	}

	rec := core.LogRecord{
		RequestID: m[2],
		Endpoint:  m[3] + " " + m[4],
	}

	if ts, err := time.Parse(TimestampLayout, m[1]); err == nil {
		rec.Timestamp = ts.Local()
		rec.TsUnixMs = ts.UnixMilli()
		rec.ValidTime = true
	}

	// Always three digits once the line matched.
	if code, err := strconv.Atoi(m[5]); err == nil {
		rec.StatusCode = code
		rec.HasStatus = true
	}

	return rec, true
}

// ParseText splits text on line feeds, parses each line in order and keeps
// at most limit records from the head. A limit <= 0 means MaxRecords.
func ParseText(text string, limit int) []core.LogRecord {
	if limit <= 0 {
		limit = MaxRecords
	}

	var records []core.LogRecord
	for i, line := range strings.Split(text, "\n") {
		rec, ok := ParseLine(line)
		if !ok {
			continue
		}
		rec.Line = i + 1
		records = append(records, rec)
	}

	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
