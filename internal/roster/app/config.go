package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer    string        // Issuer claim for tokens (default: roster)
	Algorithm string        // JWT signing algorithm: RS256, ES256, EdDSA (default: EdDSA)
	RSABits   int           // RSA key size for RS256 (0: key manager default, 4096)
	NumKeys   int           // Number of signing keys (0: key manager default, 3; capped at 10)
	TokenTTL  time.Duration // Bearer token lifetime (default: 15m)

	DatabaseFile string // Path to SQLite database file (default: ./roster.db)
	PepperFile   string // Path to file containing the password pepper (default: ./pepper)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Dangling link check interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first if present; variables already set
// in the environment win.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:               getEnvOrDefault("ROSTER_ISSUER", "roster"),
		Algorithm:            getEnvOrDefault("ROSTER_ALGORITHM", "EdDSA"),
		RSABits:              getEnvIntOrDefault("ROSTER_RSA_BITS", 0), // 0 lets the key manager pick
		NumKeys:              getEnvIntOrDefault("ROSTER_NUM_KEYS", 0),
		TokenTTL:             getEnvDurationOrDefault("ROSTER_TOKEN_TTL", 15*time.Minute),
		DatabaseFile:         getEnvOrDefault("ROSTER_DATABASE_FILE", "roster.db"),
		PepperFile:           getEnvOrDefault("ROSTER_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
