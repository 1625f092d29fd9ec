// internal/stages/report/reporter.go
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	apperrors "zoo-intake/internal/common/errors"
	"zoo-intake/internal/common/logger"
	"zoo-intake/internal/common/metrics"
	"zoo-intake/internal/models"
)

const (
	TaskType = "update-report"

	// echoBanner precedes the read-back of the report, matching the operator
	// output of the original intake process.
	echoBanner = "\nUpdated Zoo Population:"
)

var (
	ErrWriteFailed = errors.New("REPORT_WRITE_FAILED")
	ErrReadFailed  = errors.New("REPORT_READ_FAILED")
)

type Config struct {
	Path string
}

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Append opens the report in append mode and writes one line per record.
// Prior contents are never truncated or rewritten. Every record must already
// carry a non-empty name.
func (h *Handler) Append(records []models.AnimalRecord) error {
	file, err := os.OpenFile(h.config.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		h.logger.WithError(apperrors.NewReportWriteFailedError(h.config.Path, err)).
			Error("report not writable, skipping write step", map[string]interface{}{
				"path": h.config.Path,
			})
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer file.Close()

	if err := h.AppendTo(file, records); err != nil {
		return err
	}

	h.logger.Info("report updated", map[string]interface{}{
		"path":  h.config.Path,
		"lines": len(records),
	})
	return nil
}

// AppendTo writes the report lines to w.
func (h *Handler) AppendTo(w io.Writer, records []models.AnimalRecord) error {
	buf := bufio.NewWriter(w)
	for _, record := range records {
		if _, err := buf.WriteString(record.ReportLine() + "\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		metrics.ReportLinesWritten.Inc()
	}
	return buf.Flush()
}

// Echo reads the full current report back and writes it line-by-line to out,
// confirming what the population file now holds. A report that cannot be
// re-opened here is the one fatal condition of the run.
func (h *Handler) Echo(out io.Writer) error {
	file, err := os.Open(h.config.Path)
	if err != nil {
		h.logger.WithError(apperrors.NewReportReadFailedError(h.config.Path, err)).
			Error("report read-back failed", map[string]interface{}{
				"path": h.config.Path,
			})
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer file.Close()

	fmt.Fprintln(out, echoBanner)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fmt.Fprintln(out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return nil
}
