package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds client-side settings for the fleet CLI and tools. Values
// come from FLEET_* environment variables with sensible defaults.
type Config struct {
	AppEnv string

	Endpoint  string
	AccessKey string
	SecretKey string

	CallTimeout  time.Duration
	AsyncWorkers int
	Metrics      bool
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	c := Config{}

	c.AppEnv = getEnv("FLEET_ENV", "development")
	c.Endpoint = getEnv("FLEET_ENDPOINT", "https://fleet.corvushold.com")
	c.AccessKey = getEnv("FLEET_ACCESS_KEY", "")
	c.SecretKey = getEnv("FLEET_SECRET_KEY", "")

	c.CallTimeout = getDuration("FLEET_CALL_TIMEOUT", 30*time.Second)
	c.AsyncWorkers = getInt("FLEET_ASYNC_WORKERS", 0)
	c.Metrics = getBool("FLEET_METRICS", false)

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return fallback
}
