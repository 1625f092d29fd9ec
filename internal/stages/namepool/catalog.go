// internal/stages/namepool/catalog.go
package namepool

import "strings"

// Catalog maps a species to its ordered list of candidate names. Keys keep
// first-seen order so the case-insensitive fallback scan is deterministic.
// A catalog is immutable once the loader returns it.
type Catalog struct {
	names map[string][]string
	keys  []string
}

func NewCatalog() *Catalog {
	return &Catalog{names: make(map[string][]string)}
}

// reset initializes (or empties) the name list for a species.
func (c *Catalog) reset(species string) {
	if _, exists := c.names[species]; !exists {
		c.keys = append(c.keys, species)
	}
	c.names[species] = nil
}

// append adds one candidate name under a species.
func (c *Catalog) append(species, name string) {
	if _, exists := c.names[species]; !exists {
		c.keys = append(c.keys, species)
	}
	c.names[species] = append(c.names[species], name)
}

// Names returns the candidate list for an exact species key.
func (c *Catalog) Names(species string) ([]string, bool) {
	names, ok := c.names[species]
	return names, ok
}

// Resolve finds the catalog key for a species: exact match first, then a
// linear case-insensitive scan in key order, first match winning.
func (c *Catalog) Resolve(species string) (string, bool) {
	if _, ok := c.names[species]; ok {
		return species, true
	}
	lower := strings.ToLower(species)
	for _, key := range c.keys {
		if strings.ToLower(key) == lower {
			return key, true
		}
	}
	return "", false
}

// Keys returns the species keys in first-seen order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// SpeciesCount returns the number of species sections loaded.
func (c *Catalog) SpeciesCount() int {
	return len(c.keys)
}

// NameCount returns the total number of candidate names across all species.
func (c *Catalog) NameCount() int {
	total := 0
	for _, names := range c.names {
		total += len(names)
	}
	return total
}
