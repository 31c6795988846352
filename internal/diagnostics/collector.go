package diagnostics

import (
	"errors"
	"log/slog"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Collector struct {
	Diags  []Diag
	logger *slog.Logger
}

func New(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		Diags:  nil,
		logger: logger,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.logger.Error(diag.Msg,
		"kind", diag.Kind.String(),
		"file", diag.Filename,
		"loc", diag.Loc.String(),
	)
	collector.Diags = append(collector.Diags, diag)
}

// Report flattens err with AsDiag and saves it. A nil error is ignored.
func (collector *Collector) Report(filename string, err error) {
	if err == nil {
		return
	}
	collector.ReportAndSave(AsDiag(filename, err))
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

// Err returns COMPILER_ERROR_FOUND once anything has been reported.
func (collector *Collector) Err() error {
	if collector.HasErrors() {
		return COMPILER_ERROR_FOUND
	}
	return nil
}
