package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Mongo struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"mongo"`

	JWT struct {
		Secret     string `yaml:"secret"`
		ExpiresMin int    `yaml:"expires_min"`
		Issuer     string `yaml:"issuer"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional YAML file with
// environment variables taking precedence. The JWT secret falls back
// to an insecure development default; set JWT_SECRET in any real
// deployment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8000"
	config.Server.Mode = "development"

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.DBName = "hostelhub"

	config.JWT.Secret = "dev-secret"
	config.JWT.ExpiresMin = 60
	config.JWT.Issuer = "hostelhub"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)
	config.Mongo.URI = GetEnv("MONGO_URI", GetEnv("DATABASE_URL", config.Mongo.URI))
	config.Mongo.DBName = GetEnv("MONGO_DB", config.Mongo.DBName)
	config.JWT.Secret = GetEnv("JWT_SECRET", config.JWT.Secret)
	config.JWT.ExpiresMin = GetEnvAsInt("JWT_EXPIRES_MIN", config.JWT.ExpiresMin)
	config.JWT.Issuer = GetEnv("JWT_ISSUER", config.JWT.Issuer)
	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is usable
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongo uri is required")
	}
	if config.Mongo.DBName == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if config.JWT.ExpiresMin <= 0 {
		return fmt.Errorf("jwt expiry must be positive")
	}
	return nil
}

// TokenTTL returns the configured token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiresMin) * time.Minute
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a
// default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
