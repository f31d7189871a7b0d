// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Matching MatchingConfig
	Worker   WorkerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	// RateLimitRequests caps requests per client IP per RateLimitWindow; 0 disables it.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// DatabaseConfig holds storage configuration. Driver is "sqlite" or "postgres".
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. An empty URL disables the progress cache.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
	TTL      time.Duration
}

// AuthConfig holds owner token configuration.
type AuthConfig struct {
	Enabled     bool
	Secret      string
	TokenExpiry time.Duration
}

// MatchingConfig holds action-to-goal matching configuration.
type MatchingConfig struct {
	Keywords            []string
	ConfidenceThreshold float64
}

// WorkerConfig holds progress recompute worker configuration.
type WorkerConfig struct {
	Enabled   bool
	Interval  time.Duration
	BatchSize int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),

			RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 300),
			RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", "sqlite"),
			URL:             getEnv("DATABASE_URL", "file:goal_tracker.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 0),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("PROGRESS_CACHE_TTL", 10*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:     getEnvAsBool("AUTH_ENABLED", false),
			Secret:      getEnv("JWT_SECRET", "change-me-in-production"),
			TokenExpiry: getEnvAsDuration("JWT_EXPIRY", 30*24*time.Hour),
		},
		Matching: MatchingConfig{
			Keywords:            getEnvAsList("MATCH_KEYWORDS", nil),
			ConfidenceThreshold: getEnvAsFloat("MATCH_CONFIDENCE_THRESHOLD", 0.7),
		},
		Worker: WorkerConfig{
			Enabled:   getEnvAsBool("PROGRESS_WORKER_ENABLED", true),
			Interval:  getEnvAsDuration("PROGRESS_WORKER_INTERVAL", 5*time.Minute),
			BatchSize: getEnvAsInt("PROGRESS_WORKER_BATCH_SIZE", 50),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
