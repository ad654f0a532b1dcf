package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	BackendSQL    = "sql"
	BackendMemory = "memory"
)

type Config struct {
	DatabaseDriver    string `envconfig:"DATABASE_DRIVER"    default:"postgres"`
	DatabaseURL       string `envconfig:"DATABASE_URL"`
	RepositoryBackend string `envconfig:"REPOSITORY_BACKEND" default:"sql"`
	HTTPPort          string `envconfig:"HTTP_PORT"          default:":8081"`
	GrpcPort          string `envconfig:"GRPC_PORT"          default:":50051"`
	LogLevel          string `envconfig:"LOG_LEVEL"          default:"info"`
}

var (
	config Config
	once   sync.Once
)

// Load reads the optional .env file and the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.RepositoryBackend = strings.ToLower(c.RepositoryBackend)
	switch c.RepositoryBackend {
	case BackendMemory:
		return nil
	case BackendSQL:
		if c.DatabaseURL == "" {
			return fmt.Errorf("configuration error: DATABASE_URL is not set")
		}
		return nil
	default:
		return fmt.Errorf("configuration error: unknown REPOSITORY_BACKEND %q", c.RepositoryBackend)
	}
}

// LoadConfig loads the process configuration once and exits on failure.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Failed to load configuration: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, Backend=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.RepositoryBackend, config.LogLevel)
		if config.DatabaseURL != "" {
			logger.Infof("Configuration loaded: DatabaseURL is set (driver %s)", config.DatabaseDriver)
		}
	})
	return &config
}
