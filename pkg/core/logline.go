package core

import "time"

// LogRecord is one access-log line that matched the request grammar.
type LogRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	TsUnixMs   int64     `json:"ts_unix_ms"`
	ValidTime  bool      `json:"valid_time"`
	Endpoint   string    `json:"endpoint,omitempty"` // "METHOD /path", empty when absent
	StatusCode int       `json:"status_code,omitempty"`
	HasStatus  bool      `json:"has_status"`
	RequestID  string    `json:"request_id,omitempty"` // bracketed id, not used for counting
	Line       int       `json:"line"`
}

// HasEndpoint reports whether both method and path were captured.
func (r LogRecord) HasEndpoint() bool {
	return r.Endpoint != ""
}
