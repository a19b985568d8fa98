package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dishdash/logging"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Kafka    KafkaConfig

	// SeedFile is an optional YAML file of restaurants added at startup.
	SeedFile      string
	StatsInterval time.Duration
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	RateLimit       float64
	RateLimitBurst  int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// KafkaConfig enables change events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	l := loader{getenv: getenv}

	cfg := &Config{
		Server: ServerConfig{
			Port:            l.str("PORT", "3003"),
			AllowedOrigins:  l.list("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:5174"}),
			RateLimit:       l.float("RATE_LIMIT", 100),
			RateLimitBurst:  l.int("RATE_LIMIT_BURST", 200),
			ReadTimeout:     l.duration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    l.duration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     l.duration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: l.duration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(l.str("STORE_DRIVER", DriverPostgres)),
			URL:             l.str("DATABASE_URL", ""),
			MaxOpenConns:    l.int("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    l.int("DB_MAX_IDLE_CONNS", 0),
			ConnMaxLifetime: l.duration("DB_CONN_MAX_LIFETIME", 0),
		},
		Logging: LoggingConfig{
			Level:  l.str("LOG_LEVEL", "info"),
			Format: l.str("LOG_FORMAT", "json"),
		},
		Kafka: KafkaConfig{
			Brokers: l.list("KAFKA_BROKERS", nil),
			Topic:   l.str("KAFKA_TOPIC", "restaurants"),
		},
		SeedFile:      l.str("SEED_FILE", ""),
		StatsInterval: l.duration("STATS_INTERVAL", 30*time.Second),
	}

	if l.err != nil {
		return nil, l.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL environment variable not set")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER %q is not supported", c.Database.Driver)
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT %q must be a number between 1 and 65535", c.Server.Port)
	}
	if c.Server.RateLimit <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT and RATE_LIMIT_BURST must be positive")
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return fmt.Errorf("LOG_FORMAT: %w", err)
	}
	c.Logging.Format = format
	if c.StatsInterval <= 0 {
		return fmt.Errorf("STATS_INTERVAL must be positive")
	}
	return nil
}

// loader records the first parse failure so Load can report it once.
type loader struct {
	getenv func(string) string
	err    error
}

func (l *loader) str(key, def string) string {
	if v := strings.TrimSpace(l.getenv(key)); v != "" {
		return v
	}
	return def
}

func (l *loader) list(key string, def []string) []string {
	raw := strings.TrimSpace(l.getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (l *loader) int(key string, def int) int {
	raw := strings.TrimSpace(l.getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		l.fail(key, raw, err)
		return def
	}
	return v
}

func (l *loader) float(key string, def float64) float64 {
	raw := strings.TrimSpace(l.getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		l.fail(key, raw, err)
		return def
	}
	return v
}

func (l *loader) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(l.getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		l.fail(key, raw, err)
		return def
	}
	return v
}

func (l *loader) fail(key, raw string, err error) {
	if l.err == nil {
		l.err = fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
}
