// internal/stages/assign/assigner.go
package assign

import (
	"math/rand"
	"strings"

	"github.com/agnivade/levenshtein"

	"zoo-intake/internal/common/logger"
	"zoo-intake/internal/common/metrics"
	"zoo-intake/internal/stages/namepool"
)

const (
	TaskType = "assign-name"

	// DefaultFallbackName is assigned when no pool entry matches a species.
	DefaultFallbackName = "Unnamed"
)

type Config struct {
	FallbackName string
}

// Assigner draws names from the catalog. The RNG handle is injected so runs
// seed it once from wall clock while tests pass a fixed seed.
type Assigner struct {
	config  *Config
	catalog *namepool.Catalog
	rng     *rand.Rand
	logger  logger.Logger
}

func New(config *Config, catalog *namepool.Catalog, rng *rand.Rand, log logger.Logger) *Assigner {
	if config.FallbackName == "" {
		config.FallbackName = DefaultFallbackName
	}
	return &Assigner{
		config:  config,
		catalog: catalog,
		rng:     rng,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Assign picks one name uniformly at random from the species' pool, trying an
// exact key match and then a case-insensitive scan. It returns the fallback
// name and false when no pool entry applies. The returned name is never empty.
func (a *Assigner) Assign(species string) (string, bool) {
	key, ok := a.catalog.Resolve(species)
	if !ok {
		fields := map[string]interface{}{"species": species}
		if suggestion := a.nearestKey(species); suggestion != "" {
			fields["didYouMean"] = suggestion
		}
		a.logger.Warn("no name pool for species, using fallback", fields)
		metrics.NamesAssigned.WithLabelValues("fallback").Inc()
		return a.config.FallbackName, false
	}

	names, _ := a.catalog.Names(key)
	if len(names) == 0 {
		a.logger.Warn("name pool for species is empty, using fallback", map[string]interface{}{
			"species": species,
			"poolKey": key,
		})
		metrics.NamesAssigned.WithLabelValues("fallback").Inc()
		return a.config.FallbackName, false
	}

	metrics.NamesAssigned.WithLabelValues("pool").Inc()
	return names[a.rng.Intn(len(names))], true
}

// nearestKey suggests a close catalog key for diagnostics. It never affects
// the assignment itself; lookup stays exact-then-case-insensitive.
func (a *Assigner) nearestKey(species string) string {
	target := strings.ToLower(species)
	best := ""
	bestDist := 0
	for _, key := range a.catalog.Keys() {
		dist := levenshtein.ComputeDistance(target, strings.ToLower(key))
		if dist > suggestionLimit(len(key)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = key
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(keyLen int) int {
	if keyLen <= 4 {
		return 1
	}
	return 2
}
