// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// PostgreSQL (platform relational side, read-only here)
	PostgresURI string

	// Flight provider. An empty key is not a startup failure: the
	// pipeline degrades to synthetic answers.
	AviationAPIKey  string
	AviationBaseURL string

	// Pipeline knobs
	CacheTTL   time.Duration
	DailyQuota int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "flighttrack"),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		AviationAPIKey:  getEnv("AVIATION_API_KEY", ""),
		AviationBaseURL: getEnv("AVIATION_BASE_URL", "http://api.aviationstack.com/v1"),

		CacheTTL:   time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 120)) * time.Minute,
		DailyQuota: int64(getEnvAsInt("DAILY_QUOTA", 4)),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
