package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends understood by db.Init.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var (
	// ErrUnknownBackend is returned when the configured backend is not one of memory, redis or postgres
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrMissingURL is returned when a networked backend has no connection url
	ErrMissingURL = errors.New("storage url not set")
)

type Config struct {
	Port        string        `yaml:"port"`
	Backend     string        `yaml:"backend"`
	RedisURL    string        `yaml:"redis_url"`
	PostgresURL string        `yaml:"postgres_url"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
}

// Default returns the configuration used when neither a file nor the environment says otherwise.
func Default() *Config {
	return &Config{
		Port:       "8080",
		Backend:    BackendMemory,
		SessionTTL: 24 * time.Hour,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when path is empty),
// then the environment ($PORT, $STORAGE_BACKEND, $REDIS_URL, $POSTGRES_URL, $SESSION_TTL).
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := c.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	return c, c.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := getenv("STORAGE_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := getenv("POSTGRES_URL"); v != "" {
		c.PostgresURL = v
	}
	if v := getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("$SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	return nil
}

// Validate checks that the backend is known and has what it needs to connect.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("%w: $REDIS_URL", ErrMissingURL)
		}
	case BackendPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("%w: $POSTGRES_URL", ErrMissingURL)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Port == "" {
		return errors.New("$PORT not set")
	}
	return nil
}
