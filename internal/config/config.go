package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string `yaml:"port" env:"SERVER_PORT"`
		Mode           string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath    string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		StorageBaseURL string `yaml:"storage_base_url" env:"SERVER_STORAGE_BASE_URL"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host" env:"DB_HOST"`
		Port     int    `yaml:"port" env:"DB_PORT"`
		User     string `yaml:"user" env:"DB_USER"`
		Password string `yaml:"password" env:"DB_PASSWORD"`
		Name     string `yaml:"name" env:"DB_NAME"`
		SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxConns int32  `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns int32  `yaml:"min_conns" env:"DB_MIN_CONNS"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	SMTP struct {
		Host           string `yaml:"host" env:"SMTP_HOST"`
		Port           int    `yaml:"port" env:"SMTP_PORT"`
		Username       string `yaml:"username" env:"SMTP_USERNAME"`
		Password       string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName       string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail      string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS         bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
		ConsoleBaseURL string `yaml:"console_base_url" env:"SMTP_CONSOLE_BASE_URL"`
	} `yaml:"smtp"`

	Holidays struct {
		CountryCode string `yaml:"country_code" env:"HOLIDAYS_COUNTRY_CODE"`
		BaseURL     string `yaml:"base_url" env:"HOLIDAYS_BASE_URL"`
	} `yaml:"holidays"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
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
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "./storage"
	config.Server.StorageBaseURL = "/files"

	config.Database.Host = "localhost"
	config.Database.Port = 5432
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.Name = "trainhub"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 20
	config.Database.MinConns = 2

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "720h"
	config.JWT.Issuer = "trainhub.app"

	config.SMTP.Port = 587
	config.SMTP.FromName = "TrainHub"
	config.SMTP.UseTLS = true
	config.SMTP.ConsoleBaseURL = "http://localhost:3000"

	config.Holidays.CountryCode = "TR"
	config.Holidays.BaseURL = "https://date.nager.at/api/v3"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Mode == "production" && config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret must be set in production mode")
	}
	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid access token expiration: %w", err)
	}
	if _, err := time.ParseDuration(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid refresh token expiration: %w", err)
	}
	if config.Holidays.CountryCode == "" {
		return fmt.Errorf("holidays country code must be set")
	}
	return nil
}
