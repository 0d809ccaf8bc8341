package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string        // Optional: issuer claim for tokens (default: clinic)
	SessionTTL     time.Duration // Optional: lifetime of a sign-in (default: 168h)
	SigningKeyFile string        // Optional: Ed25519 PKCS8 PEM; tokens survive restarts when set
	NumKeys        int           // Optional: ephemeral signing keys to generate (default: 3, max: 10)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./clinic.db)
	DatabaseURL    string // Required for postgres: connection URL
	PepperFile     string // Optional: path to file containing pepper for password hashing (default: ./clinic.pepper)

	CookieName     string   // Optional: identity cookie name (default: token)
	AllowedOrigins []string // Optional: CORS origins allowed with credentials (default: http://localhost:5173)

	Env                  string        // Environment (dev, test, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingSchedule string        // Cron expression for session cleanup (default: @hourly)
}

// LoadConfig reads the environment, after merging a local .env file if one
// exists. Variables already set win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Issuer:         getEnvOrDefault("CLINIC_ISSUER", "clinic"),
		SessionTTL:     getEnvDurationOrDefault("CLINIC_SESSION_TTL", 7*24*time.Hour),
		SigningKeyFile: os.Getenv("CLINIC_SIGNING_KEY_FILE"),
		NumKeys:        getEnvIntOrDefault("CLINIC_NUM_KEYS", 0), // 0 lets the KeyManager pick

		DatabaseDriver: strings.ToLower(getEnvOrDefault("CLINIC_DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("CLINIC_DATABASE_FILE", "clinic.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		PepperFile:     getEnvOrDefault("CLINIC_PEPPER_FILE", "clinic.pepper"),

		CookieName:     getEnvOrDefault("CLINIC_COOKIE_NAME", "token"),
		AllowedOrigins: getEnvListOrDefault("CLINIC_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingSchedule: getEnvOrDefault("HOUSEKEEPING_SCHEDULE", "@hourly"),
	}

	return cfg
}

// IsProduction reports whether error detail must stay out of responses.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

// SecureCookies is false only for local development and tests over plain HTTP.
func (c Config) SecureCookies() bool {
	switch strings.ToLower(c.Env) {
	case "dev", "development", "test", "local":
		return false
	}
	return true
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
