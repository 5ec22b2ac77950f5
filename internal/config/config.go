package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT" validate:"required,numeric"`
		Mode string `yaml:"mode" env:"SERVER_MODE" validate:"oneof=development production release debug test"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error fatal"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json text"`
	} `yaml:"logging"`

	Dataset struct {
		// Path replaces the built-in elective table when set
		Path string `yaml:"path" env:"DATASET_PATH"`
	} `yaml:"dataset"`

	Links struct {
		BaseURL string `yaml:"base_url" env:"COURSE_PAGE_BASE_URL" validate:"required,url"`
	} `yaml:"links"`

	Cache struct {
		QuerySize int           `yaml:"query_size" env:"CACHE_QUERY_SIZE" validate:"gte=1"`
		StatsTTL  time.Duration `yaml:"stats_ttl" env:"CACHE_STATS_TTL" validate:"gte=0"`
	} `yaml:"cache"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine, defaults and env still apply
	file, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Links.BaseURL = "https://courses.coolstuff.work/course/"

	config.Cache.QuerySize = 256
	config.Cache.StatsTTL = 0
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config, os.LookupEnv)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	return validator.New().Struct(config)
}

// IsProduction reports whether the server runs in a release mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production" || c.Server.Mode == "release"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
