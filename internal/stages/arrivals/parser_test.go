// internal/stages/arrivals/parser_test.go
package arrivals

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-intake/internal/common/logger"
	"zoo-intake/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, config *Config) *Handler {
	if config == nil {
		config = &Config{Path: "unused"}
	}
	return NewHandler(config, logger.NewTestLogger(t))
}

func parseString(t *testing.T, config *Config, source string) ([]models.AnimalRecord, error) {
	return createTestHandler(t, config).Parse(strings.NewReader(source))
}

// ==========================
// Core Parsing Tests
// ==========================

func TestParse_ValidRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.AnimalRecord
	}{
		{
			name: "arriving hyena",
			line: "4 Hyena, born in spring, brown, 42.5, savanna, east",
			want: models.AnimalRecord{
				Age:         4,
				Species:     "Hyena",
				BirthSeason: "born in spring",
				Color:       "brown",
				Weight:      42.5,
				Origin:      "savanna east",
			},
		},
		{
			name: "integer weight",
			line: "2 tiger, born in winter, orange and black, 120, jungle, north",
			want: models.AnimalRecord{
				Age:         2,
				Species:     "tiger",
				BirthSeason: "born in winter",
				Color:       "orange and black",
				Weight:      120,
				Origin:      "jungle north",
			},
		},
		{
			name: "multi-word species",
			line: "6 Polar Bear, born in winter, white, 350.2, arctic, north",
			want: models.AnimalRecord{
				Age:         6,
				Species:     "Polar Bear",
				BirthSeason: "born in winter",
				Color:       "white",
				Weight:      350.2,
				Origin:      "arctic north",
			},
		},
		{
			name: "untrimmed fields",
			line: "  4 Hyena ,  born in spring ,  brown ,  42.5 ,  savanna ,  east  ",
			want: models.AnimalRecord{
				Age:         4,
				Species:     "Hyena",
				BirthSeason: "born in spring",
				Color:       "brown",
				Weight:      42.5,
				Origin:      "savanna east",
			},
		},
		{
			name: "empty origin part still joined with one space",
			line: "3 Lion, born in fall, golden, 190.3, , east",
			want: models.AnimalRecord{
				Age:         3,
				Species:     "Lion",
				BirthSeason: "born in fall",
				Color:       "golden",
				Weight:      190.3,
				Origin:      " east",
			},
		},
		{
			name: "extra fields beyond six are ignored",
			line: "5 Zebra, born in spring, striped, 220, plains, central, spare",
			want: models.AnimalRecord{
				Age:         5,
				Species:     "Zebra",
				BirthSeason: "born in spring",
				Color:       "striped",
				Weight:      220,
				Origin:      "plains central",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := parseString(t, nil, tt.line)

			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0])
			assert.Empty(t, records[0].Name, "name stays unset until assignment")
		})
	}
}

func TestParse_MalformedRecordsSkipped(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "three fields", line: "3 Lion, born in fall, golden"},
		{name: "five fields", line: "3 Lion, born in fall, golden, 190.3, savanna"},
		{name: "single field", line: "just some text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := parseString(t, nil, tt.line)

			assert.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestParse_SkipsBlankLinesAndKeepsGoing(t *testing.T) {
	source := strings.Join([]string{
		"",
		"4 Hyena, born in spring, brown, 42.5, savanna, east",
		"   ",
		"3 Lion, born in fall, golden",
		"7 Lion, born in summer, golden, 190.3, savanna, south",
	}, "\n")

	records, err := parseString(t, nil, source)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Hyena", records[0].Species)
	assert.Equal(t, "Lion", records[1].Species)
}

// ==========================
// Numeric Field Policy Tests
// ==========================

func TestParse_UnparsableNumbers(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "non-numeric age", line: "old Hyena, born in spring, brown, 42.5, savanna, east"},
		{name: "non-numeric weight", line: "4 Hyena, born in spring, brown, heavy, savanna, east"},
		{name: "fractional age", line: "4.5 Hyena, born in spring, brown, 42.5, savanna, east"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" skipped by default", func(t *testing.T) {
			records, err := parseString(t, nil, tt.line)

			assert.NoError(t, err)
			assert.Empty(t, records)
		})

		t.Run(tt.name+" aborts under strict numbers", func(t *testing.T) {
			records, err := parseString(t, &Config{Path: "unused", StrictNumbers: true}, tt.line)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnparsableNumber))
			assert.Empty(t, records)
		})
	}
}

func TestParse_StrictAbortDropsWholeBatch(t *testing.T) {
	source := strings.Join([]string{
		"4 Hyena, born in spring, brown, 42.5, savanna, east",
		"4 Hyena, born in spring, brown, heavy, savanna, east",
	}, "\n")

	records, err := parseString(t, &Config{Path: "unused", StrictNumbers: true}, source)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparsableNumber))
	assert.Empty(t, records)
}

// ==========================
// Field-Zero Split Tests
// ==========================

func TestSplitAgeSpecies(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		wantAge     string
		wantSpecies string
	}{
		{name: "simple", field: "4 Hyena", wantAge: "4", wantSpecies: "Hyena"},
		{name: "multi-word species", field: "6 Polar Bear", wantAge: "6", wantSpecies: "Polar Bear"},
		{name: "tab separator", field: "2\tLion", wantAge: "2", wantSpecies: "Lion"},
		{name: "age only", field: "9", wantAge: "9", wantSpecies: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, species := splitAgeSpecies(tt.field)
			assert.Equal(t, tt.wantAge, age)
			assert.Equal(t, tt.wantSpecies, species)
		})
	}
}

// ==========================
// Execute Tests
// ==========================

func TestExecute_MissingFileIsNonFatal(t *testing.T) {
	handler := createTestHandler(t, &Config{Path: filepath.Join(t.TempDir(), "missing.txt")})

	records, err := handler.Execute(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestExecute_ParsesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arrivingAnimals.txt")
	content := "4 Hyena, born in spring, brown, 42.5, savanna, east\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := createTestHandler(t, &Config{Path: path}).Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "savanna east", records[0].Origin)
}
