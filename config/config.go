package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDatabaseURL is used when DATABASE_URL is unset
const DefaultDatabaseURL = "sqlite:////tmp/test.db"

// Config holds all configuration for the application
type Config struct {
	Environment Environment `validate:"required,oneof=development test ci production"`

	// Server configuration
	ServerPort      string        `validate:"required,numeric"`
	ServerHost      string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	CORSOrigins     []string      `validate:"required,min=1,dive,required"`

	// Database configuration
	DatabaseURL       string        `validate:"required"`
	DBMaxOpenConns    int           `validate:"gte=1"`
	DBMaxIdleConns    int           `validate:"gte=0"`
	DBConnMaxLifetime time.Duration `validate:"gte=0"`

	// Redis configuration, rate limiting is disabled when RedisURL is empty
	RedisURL           string `validate:"omitempty,url"`
	FavoritesRateLimit int    `validate:"gte=1"`

	// Logging configuration
	LogLevel  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat string `validate:"oneof=json console"`
}

// LoadConfig creates a new Config instance from the environment and an optional .env file
func LoadConfig() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	env := GetEnvironment()
	cfg := &Config{
		Environment:        env,
		ServerPort:         getEnv("PORT", "3000"),
		ServerHost:         getEnv("HOST", "0.0.0.0"),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS", []string{"*"}),
		DatabaseURL:        getEnv("DATABASE_URL", DefaultDatabaseURL),
		DBMaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime:  getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		RedisURL:           os.Getenv("REDIS_URL"),
		FavoritesRateLimit: getEnvAsInt("FAVORITES_RATE_LIMIT", 60),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat(env))),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RateLimitEnabled reports whether favorite mutations are rate limited
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURL != ""
}

func defaultLogFormat(env Environment) string {
	if env == Development {
		return "console"
	}
	return "json"
}

// getEnv returns the environment variable or defaultValue when unset
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
