package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

// DSN renders the libpq keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Config centralises environment configuration for both binaries.
type Config struct {
	Env         string
	Port        string
	Database    DatabaseConfig
	AutoMigrate bool
	RedisAddr   string
	RateLimit   RateLimitConfig

	ShutdownTimeout time.Duration

	WebPort           string
	APIBaseURL        string
	HTTPClientTimeout time.Duration
}

// Load reads the process environment. A missing variable falls back to its
// default; a malformed numeric or duration value also falls back.
func Load() *Config {
	return &Config{
		Env:  getEnvOrDefault("APP_ENV", "development"),
		Port: getEnvOrDefault("PORT", "5015"),
		Database: DatabaseConfig{
			Host:       getEnvOrDefault("DB_HOST", "localhost"),
			Port:       getEnvOrDefault("DB_PORT", "5432"),
			User:       getEnvOrDefault("DB_USER", "postgres"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getEnvOrDefault("DB_NAME", "salary_slip_db"),
			SSLMode:    getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxRetries: getIntEnv("DB_MAX_RETRIES", 5),
		},
		AutoMigrate: getBoolEnv("AUTO_MIGRATE", true),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RateLimit: RateLimitConfig{
			RPS:   getFloatEnv("RATE_LIMIT_RPS", 20),
			Burst: getIntEnv("RATE_LIMIT_BURST", 40),
		},
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		WebPort:           getEnvOrDefault("WEB_PORT", "3000"),
		APIBaseURL:        strings.TrimRight(getEnvOrDefault("API_BASE_URL", "http://localhost:5015"), "/"),
		HTTPClientTimeout: getDurationEnv("HTTP_CLIENT_TIMEOUT", 20*time.Second),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnvOrDefault(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func getIntEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getFloatEnv(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getBoolEnv(key string, defaultVal bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultVal
	}
	switch strings.ToLower(raw) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return defaultVal
	}
}
