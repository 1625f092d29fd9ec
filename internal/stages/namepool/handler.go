// internal/stages/namepool/handler.go
package namepool

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	apperrors "zoo-intake/internal/common/errors"
	"zoo-intake/internal/common/logger"
	"zoo-intake/internal/common/metrics"
)

const (
	TaskType = "load-name-pool"

	// Only these two byte-literal suffixes mark a header line. Variants like
	// "NAMES:" or "Names :" are deliberately not recognized; loosening the
	// rule would silently change catalog contents.
	headerSuffix      = "Names:"
	headerSuffixLower = "names:"
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

// Execute loads the name pool from the configured path. A source that cannot
// be opened is not fatal: the run continues with an empty catalog.
func (h *Handler) Execute(ctx context.Context) (*Catalog, error) {
	file, err := os.Open(h.config.Path)
	if err != nil {
		h.logger.WithError(apperrors.NewFileMissingError(h.config.Path, err)).
			Error("name pool unavailable, continuing with empty catalog", map[string]interface{}{
				"path": h.config.Path,
			})
		return NewCatalog(), nil
	}
	defer file.Close()

	catalog, err := h.Parse(file)
	if err != nil {
		return catalog, err
	}

	h.logger.Info("name pool loaded", map[string]interface{}{
		"path":    h.config.Path,
		"species": catalog.SpeciesCount(),
		"names":   catalog.NameCount(),
	})
	return catalog, nil
}

// Parse reads header and data lines from r into a catalog.
//
// A header line, after trimming, ends with "Names:" or "names:"; its trimmed
// prefix becomes the current species and resets that species' list. Any other
// non-blank line is comma-separated data: tokens are trimmed and non-empty
// ones appended to the current species. Data before the first header has no
// species to attach to and is dropped.
func (h *Handler) Parse(r io.Reader) (*Catalog, error) {
	catalog := NewCatalog()
	currentSpecies := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if species, ok := headerSpecies(line); ok {
			currentSpecies = species
			catalog.reset(species)
			continue
		}

		if currentSpecies == "" {
			h.logger.Debug("dropping data line before first header", map[string]interface{}{
				"line": line,
			})
			continue
		}

		for _, token := range strings.Split(line, ",") {
			name := strings.TrimSpace(token)
			if name == "" {
				continue
			}
			catalog.append(currentSpecies, name)
			metrics.PoolNamesLoaded.WithLabelValues(currentSpecies).Inc()
		}
	}
	if err := scanner.Err(); err != nil {
		return catalog, err
	}

	return catalog, nil
}

// headerSpecies reports whether a trimmed line is a species header and, if
// so, returns the trimmed species prefix.
func headerSpecies(line string) (string, bool) {
	if strings.HasSuffix(line, headerSuffix) || strings.HasSuffix(line, headerSuffixLower) {
		return strings.TrimSpace(line[:len(line)-len(headerSuffix)]), true
	}
	return "", false
}
