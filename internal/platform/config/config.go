package config

import (
	"os"
	"strconv"
)

// Config captures the externally supplied settings so main stays lean.
type Config struct {
	Addr        string
	DatabaseURL string
	MinUserAge  int
	LogLevel    string
}

// FromEnv builds a Config from environment variables with sensible defaults.
// An empty DatabaseURL selects the in-memory store.
func FromEnv() Config {
	return Config{
		Addr:        ":" + getEnv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MinUserAge:  getEnvInt("USER_MIN_AGE", 18),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
