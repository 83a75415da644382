package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the demo apps read from the environment. It is
// loaded once at startup; there is no hot reload.
type Config struct {
	Port        int
	Environment string
	Debug       bool
	Version     string

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig carries the Postgres connection parameters.
type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// RedisConfig carries the Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Load reads the configuration from environment variables, falling back to
// the defaults the compose setup assumes (service names "database" and
// "cache" resolve inside the compose network).
func Load() Config {
	return Config{
		Port:        getenvInt("PORT", 5000),
		Environment: getenv("ENVIRONMENT", "development"),
		Debug:       getenvBool("DEBUG", false),
		Version:     getenv("APP_VERSION", "1.0.0"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "database"),
			Port:     getenv("DB_PORT", "5432"),
			Name:     getenv("DB_NAME", "webapp"),
			User:     getenv("DB_USER", "admin"),
			Password: getenv("DB_PASSWORD", "secret"),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "cache"),
			Port:     getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN builds the Postgres connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// Addr returns the host:port pair for the Redis client.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}
