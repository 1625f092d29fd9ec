// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Files   FilesConfig   `mapstructure:"files"`
	Ingest  IngestConfig  `mapstructure:"ingest"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// FilesConfig holds the three fixed files the pipeline touches:
// two read sources and the append-only report.
type FilesConfig struct {
	NamePool string `mapstructure:"name_pool"`
	Arrivals string `mapstructure:"arrivals"`
	Report   string `mapstructure:"report"`
}

// IngestConfig holds per-run ingest behavior.
type IngestConfig struct {
	// StrictNumbers aborts the whole batch on an unparsable age or weight
	// instead of skipping the record.
	StrictNumbers bool `mapstructure:"strict_numbers"`
	// FallbackName is assigned when no pool entry matches a species.
	FallbackName string `mapstructure:"fallback_name"`
	// Seed for the naming RNG; 0 seeds from wall clock at startup.
	Seed int64 `mapstructure:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
