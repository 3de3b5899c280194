package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full service configuration, loaded once at startup and passed
// down explicitly. No component reads the environment after this point.
type Config struct {
	Port           string
	JWTSecret      string
	AllowedOrigins []string

	Database DatabaseConfig
	Provider string
	// upper bound for a single question-generation or evaluation call
	OracleTimeout time.Duration

	SMTP      SMTPConfig
	RedisAddr string
	Meeting   MeetingConfig
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// DSN renders the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Configured reports whether outgoing mail can be attempted at all.
func (s SMTPConfig) Configured() bool {
	return s.Username != "" && s.Password != ""
}

type MeetingConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev"),
		AllowedOrigins: strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		Database: DatabaseConfig{
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			User:     getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Name:     getEnvOrDefault("POSTGRES_DB", "interviewai"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
			SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		},
		Provider:      getEnvOrDefault("AI_PROVIDER", "gemini"),
		OracleTimeout: time.Duration(getEnvInt("ORACLE_TIMEOUT_SECONDS", 30)) * time.Second,
		SMTP: SMTPConfig{
			Host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvOrDefault("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("SMTP_FROM"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Meeting: MeetingConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		},
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + cfg.Provider + ". Currently supported: gemini")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
