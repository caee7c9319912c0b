package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080" validate:"required,hostname_port"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s" validate:"gt=0"`
	RequestTimeout          time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s" validate:"gte=0"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`

	Postgres Postgres
	Redis    Redis
	Trivia   Trivia
	CORS     CORS
}

// Postgres captures connection info for the SQL database.
// Only required when Trivia.Driver is "postgres".
type Postgres struct {
	Host            string        `env:"PG_HOST" envDefault:"localhost"`
	Port            int           `env:"PG_PORT" envDefault:"5432" validate:"gt=0,lte=65535"`
	User            string        `env:"PG_USER"`
	Password        string        `env:"PG_PASSWORD"`
	Database        string        `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode         string        `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns        int32         `env:"PG_MAX_CONNS" envDefault:"10" validate:"gt=0"`
	MaxConnLifetime time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
}

// Redis holds cache configuration. An empty Addr disables caching.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Trivia groups API behavior knobs.
type Trivia struct {
	Driver           string        `env:"STORE_DRIVER" envDefault:"postgres" validate:"oneof=postgres memory"`
	QuestionsPerPage int           `env:"QUESTIONS_PER_PAGE" envDefault:"10" validate:"gt=0"`
	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"5m"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"DELETE,GET,POST,PUT"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600" validate:"gte=0"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and the driver-specific requirements.
func (c *App) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Trivia.Driver == DriverPostgres && (c.Postgres.User == "" || c.Postgres.Password == "") {
		return fmt.Errorf("PG_USER and PG_PASSWORD are required for the %s driver", DriverPostgres)
	}
	return nil
}
