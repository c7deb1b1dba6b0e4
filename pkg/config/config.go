// Package config loads engine configuration from config.yaml with
// environment variable overrides. Secrets only come from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the query engine. Environment
// variables always override YAML values; secrets (OPENAI_API_KEY,
// B1_DB_PASSWORD) are env-only.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// AllowedOriginsStr is a comma-separated list of CORS origins.
	AllowedOriginsStr string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`

	// AllowedOrigins is parsed from AllowedOriginsStr (not from config file).
	AllowedOrigins []string `yaml:"-"`

	// OpenAI holds completion service configuration.
	OpenAI OpenAIConfig `yaml:"openai"`

	// Database holds the SAP B1 company database configuration.
	Database DatabaseConfig `yaml:"database"`
}

// OpenAIConfig holds completion service configuration.
type OpenAIConfig struct {
	APIKey         string        `yaml:"-" env:"OPENAI_API_KEY"` // Secret - not in YAML
	Model          string        `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4"`
	BaseURL        string        `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:""`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"OPENAI_REQUEST_TIMEOUT" env-default:"60s"`
}

// DatabaseConfig holds SAP B1 company database configuration. SAP B1 on
// SQL Server; Schema is the company schema every generated identifier is
// prefixed with.
type DatabaseConfig struct {
	Host         string        `yaml:"host" env:"B1_DB_HOST" env-default:""`
	Port         int           `yaml:"port" env:"B1_DB_PORT" env-default:"1433"`
	User         string        `yaml:"user" env:"B1_DB_USER" env-default:""`
	Password     string        `yaml:"-" env:"B1_DB_PASSWORD"` // Secret - not in YAML
	Database     string        `yaml:"database" env:"B1_DB_DATABASE" env-default:""`
	Schema       string        `yaml:"schema" env:"B1_SCHEMA" env-default:"SBODEMOUS"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"B1_DB_QUERY_TIMEOUT" env-default:"30s"`
	MaxRows      int           `yaml:"max_rows" env:"B1_DB_MAX_ROWS" env-default:"1000"`
}

// ErrMissingAPIKey indicates OPENAI_API_KEY was not provided.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not found in environment")

// Load reads configuration from config.yaml with environment variable
// overrides. When config.yaml is absent, configuration comes from the
// environment alone. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	cfg.AllowedOrigins = splitAndTrim(cfg.AllowedOriginsStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required credentials are present. The database is
// validated lazily since execution is optional per request.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// DatasourceConfigured reports whether enough database configuration
// exists to attempt query execution.
func (c *DatabaseConfig) DatasourceConfigured() bool {
	return c.Host != "" && c.Database != ""
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
