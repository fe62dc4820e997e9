package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	APIBaseURL    string
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration
	SecureCookies bool
}

// Load reads configuration from the environment, preferring a local .env
// file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASS", ""),
		SessionTTL:    getDurationEnv("SESSION_TTL", 720*time.Hour),
		SecureCookies: getEnv("ENV", "development") == "production",
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
