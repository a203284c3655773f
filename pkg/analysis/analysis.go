package analysis

import (
	"log/slog"

	"github.com/modoterra/logtally/pkg/core"
	"github.com/modoterra/logtally/pkg/parser"
	"github.com/modoterra/logtally/pkg/source"
)

// Result holds the record store and the three aggregates built from it.
type Result struct {
	Records     []core.LogRecord     `json:"-"`
	Endpoints   *core.Tally[string] `json:"endpoints"`
	Minutes     *core.Tally[string] `json:"minutes"`
	StatusCodes *core.Tally[int]    `json:"status_codes"`
}

// Analyze runs every counter over records.
func Analyze(records []core.LogRecord) Result {
	return Result{
		Records:     records,
		Endpoints:   CountEndpointCalls(records),
		Minutes:     CountCallsPerMinute(records),
		StatusCodes: CountCallsByStatusCode(records),
	}
}

// Runner reads a log file and analyzes its first records.
type Runner struct {
	src    *source.File
	limit  int
	logger *slog.Logger
}

// NewRunner creates a runner keeping at most limit records (<= 0 means parser.MaxRecords).
func NewRunner(src *source.File, limit int, logger *slog.Logger) *Runner {
	if limit <= 0 {
		limit = parser.MaxRecords
	}
	return &Runner{src: src, limit: limit, logger: logger}
}

// Run reads path, parses it and aggregates the kept records.
// A read failure aborts the run with a *source.FileAccessError.
func (r *Runner) Run(path string) (Result, error) {
	text, err := r.src.ReadText(path)
	if err != nil {
		return Result{}, err
	}

	records := parser.ParseText(text, r.limit)
	r.logger.Debug("records parsed", "path", path, "records", len(records), "limit", r.limit)

	return Analyze(records), nil
}
