package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"mlbstats"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"mlbstats_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" default:""`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis (optional archive cache)
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Archive cache TTL. Yearly archives for past seasons are immutable, so a
	// long TTL is safe.
	ArchiveCacheTTL time.Duration `envconfig:"ARCHIVE_CACHE_TTL" default:"168h"`

	// Upstream sources
	FangraphsBaseURL   string `envconfig:"FANGRAPHS_BASE_URL" default:"https://www.fangraphs.com/leaders.aspx"`
	RetrosheetBaseURL  string `envconfig:"RETROSHEET_BASE_URL" default:"https://www.retrosheet.org"`
	RetrosplitsBaseURL string `envconfig:"RETROSPLITS_BASE_URL" default:"https://raw.githubusercontent.com/chadwickbureau/retrosplits/master"`
	StatcastBaseURL    string `envconfig:"STATCAST_BASE_URL" default:"https://baseballsavant.mlb.com/statcast_search/csv"`
	LookupTableURL     string `envconfig:"LOOKUP_TABLE_URL" default:"https://raw.githubusercontent.com/chadwickbureau/register/master/data/people.csv"`

	// HTTP client
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"60s"`
	RequestSpacing time.Duration `envconfig:"REQUEST_SPACING" default:"500ms"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Loader: commit after each unit of work (day/season) instead of once at
	// the end of a load call
	CommitEachUnit bool `envconfig:"COMMIT_EACH_UNIT" default:"true"`

	// Scheduler (worker mode)
	EnableScheduler    bool   `envconfig:"ENABLE_SCHEDULER" default:"true"`
	NightlyRefreshCron string `envconfig:"NIGHTLY_REFRESH_CRON" default:"0 2 * * *"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if present
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.RequestSpacing < 0 {
		return fmt.Errorf("REQUEST_SPACING must not be negative")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
