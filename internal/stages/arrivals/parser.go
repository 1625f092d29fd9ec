// internal/stages/arrivals/parser.go
package arrivals

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	apperrors "zoo-intake/internal/common/errors"
	"zoo-intake/internal/common/logger"
	"zoo-intake/internal/common/metrics"
	"zoo-intake/internal/models"
)

const (
	TaskType = "parse-arrivals"

	// minFields is the required field count for a valid arrivals record:
	// "age species", birth season, color, weight, origin part 1, origin part 2.
	minFields = 6
)

var (
	ErrMalformedRecord  = errors.New("RECORD_MALFORMED")
	ErrUnparsableNumber = errors.New("NUMBER_UNPARSABLE")
)

type Config struct {
	Path string
	// StrictNumbers aborts the whole batch on an unparsable age or weight,
	// restoring the historical behavior. Default is skip-and-log.
	StrictNumbers bool
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

// Execute parses the configured arrivals file. A source that cannot be opened
// is not fatal: the run continues with no arriving records.
func (h *Handler) Execute(ctx context.Context) ([]models.AnimalRecord, error) {
	file, err := os.Open(h.config.Path)
	if err != nil {
		h.logger.WithError(apperrors.NewFileMissingError(h.config.Path, err)).
			Error("arrivals source unavailable, continuing with no records", map[string]interface{}{
				"path": h.config.Path,
			})
		return nil, nil
	}
	defer file.Close()

	records, err := h.Parse(file)
	if err != nil {
		return nil, err
	}

	h.logger.Info("arrivals parsed", map[string]interface{}{
		"path":    h.config.Path,
		"records": len(records),
	})
	return records, nil
}

// Parse reads one record per line from r. Malformed lines (fewer than six
// comma-separated fields) are logged and skipped. Unparsable age or weight
// skips the record too, unless StrictNumbers is set, in which case the whole
// parse fails.
func (h *Handler) Parse(r io.Reader) ([]models.AnimalRecord, error) {
	var records []models.AnimalRecord

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			if errors.Is(err, ErrMalformedRecord) {
				fields := splitFields(line)
				h.logger.WithError(apperrors.NewRecordMalformedError(line, len(fields))).
					Error("invalid record", map[string]interface{}{"line": line})
				metrics.RecordsSkipped.WithLabelValues("malformed").Inc()
				continue
			}
			if errors.Is(err, ErrUnparsableNumber) {
				if h.config.StrictNumbers {
					return nil, fmt.Errorf("parse arrivals: %w", err)
				}
				h.logger.WithError(apperrors.NewNumberUnparsableError("age/weight", line, err)).
					Error("skipping record with unparsable number", map[string]interface{}{
						"line": line,
					})
				metrics.RecordsSkipped.WithLabelValues("unparsable_number").Inc()
				continue
			}
			return nil, err
		}

		records = append(records, record)
		metrics.RecordsParsed.Inc()
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}

	return records, nil
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		fields = append(fields, strings.TrimSpace(part))
	}
	return fields
}

func parseLine(line string) (models.AnimalRecord, error) {
	fields := splitFields(line)
	if len(fields) < minFields {
		return models.AnimalRecord{}, fmt.Errorf("%w: %d fields", ErrMalformedRecord, len(fields))
	}

	// Field 0 carries both age and species: the leading whitespace-delimited
	// token is the age, the trimmed remainder is the species.
	ageToken, species := splitAgeSpecies(fields[0])
	age, err := strconv.Atoi(ageToken)
	if err != nil {
		return models.AnimalRecord{}, fmt.Errorf("%w: age %q", ErrUnparsableNumber, ageToken)
	}

	weight, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return models.AnimalRecord{}, fmt.Errorf("%w: weight %q", ErrUnparsableNumber, fields[3])
	}

	return models.AnimalRecord{
		Age:         age,
		Species:     species,
		BirthSeason: fields[1],
		Color:       fields[2],
		Weight:      weight,
		// Single-space join even when either part is empty.
		Origin: fields[4] + " " + fields[5],
	}, nil
}

func splitAgeSpecies(field string) (ageToken, species string) {
	i := strings.IndexFunc(field, unicode.IsSpace)
	if i < 0 {
		return field, ""
	}
	return field[:i], strings.TrimSpace(field[i:])
}
