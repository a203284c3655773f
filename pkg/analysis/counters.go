// Package analysis folds parsed records into frequency tables.
package analysis

import (
	"strconv"

	"github.com/modoterra/logtally/pkg/core"
)

// InvalidMinute is the per-minute bucket for records whose timestamp did not parse.
const InvalidMinute = "invalid"

// CountEndpointCalls counts records per endpoint, skipping records without one.
func CountEndpointCalls(records []core.LogRecord) *core.Tally[string] {
	t := core.NewTally[string]()
	for _, rec := range records {
		if rec.HasEndpoint() {
			t.Add(rec.Endpoint)
		}
	}
	return t
}

// CountCallsPerMinute counts records per local wall-clock minute.
// Labels are "<hour>:<minute>" without zero padding; the day is discarded.
func CountCallsPerMinute(records []core.LogRecord) *core.Tally[string] {
	t := core.NewTally[string]()
	for _, rec := range records {
		t.Add(MinuteLabel(rec))
	}
	return t
}

// CountCallsByStatusCode counts records per three-digit code.
func CountCallsByStatusCode(records []core.LogRecord) *core.Tally[int] {
	t := core.NewTally[int]()
	for _, rec := range records {
		if rec.HasStatus {
			t.Add(rec.StatusCode)
		}
	}
	return t
}

// MinuteLabel returns the per-minute bucket key for rec, e.g. "9:5".
func MinuteLabel(rec core.LogRecord) string {
	if !rec.ValidTime {
		return InvalidMinute
	}
	return strconv.Itoa(rec.Timestamp.Hour()) + ":" + strconv.Itoa(rec.Timestamp.Minute())
}
