// internal/models/animal.go
package models

import (
	"strconv"
	"strings"
)

// AnimalRecord is one arriving animal. Records are created by the arrivals
// parser with Name empty, named once by the assigner, then treated as
// read-only by the reporter.
type AnimalRecord struct {
	Age         int     `json:"age"`
	Species     string  `json:"species"`
	BirthSeason string  `json:"birthSeason"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Origin      string  `json:"origin"`
	Name        string  `json:"name"`
}

// ReportLine renders the fixed population report format:
// name, species, age, birth season, color, weight, origin.
func (a AnimalRecord) ReportLine() string {
	fields := []string{
		a.Name,
		a.Species,
		strconv.Itoa(a.Age),
		a.BirthSeason,
		a.Color,
		FormatWeight(a.Weight),
		a.Origin,
	}
	return strings.Join(fields, ", ")
}

// FormatWeight renders a weight with the shortest round-trip representation,
// so 42.5 stays "42.5" and 300 stays "300".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
