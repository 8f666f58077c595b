package config

import (
	"github.com/caarlos0/env/v11"

	"pubtag/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). Non-prod
	// environments emit extra data-quality warnings.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Track configures attribution URL generation and CDN rewriting.
	// Environment variables prefixed with TRACK_ will populate this struct.
	Track configs.Tracking `envPrefix:"TRACK_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. Malformed values are reported here, at startup, not
// discovered mid-generation.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Track.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
