package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Database     DatabaseConfig
	Server       ServerConfig
	Auth         AuthConfig
	SOS          SOSConfig
	Notification NotificationConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DatabaseURL string // DATABASE_URL (e.g. from Render) - takes precedence over individual vars
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// AuthConfig holds JWT configuration
type AuthConfig struct {
	JWTSecret        string
	TokenExpiryHours int
	AdminToken       string // ADMIN_TOKEN: static bearer token for admin endpoints; empty disables them
}

// SOSConfig holds SOS dispatch configuration
type SOSConfig struct {
	SearchRadiusKm                float64 // SOS_SEARCH_RADIUS_KM: nearest-station search cap
	NearbyRadiusKm                float64 // SOS_NEARBY_RADIUS_KM: /stations/nearby radius
	OfficersPerAlert              int     // SOS_OFFICERS_PER_ALERT: officers bound per assignment
	DispatchWorkerIntervalSeconds int     // DISPATCH_WORKER_INTERVAL_SECONDS: retry loop for unassigned alerts (0 = default)
	StationCacheTTLSeconds        int     // STATION_CACHE_TTL_SECONDS: locator cache TTL
}

// NotificationConfig holds notification worker configuration
type NotificationConfig struct {
	WorkerIntervalSeconds int // NOTIFICATION_WORKER_INTERVAL_SECONDS (0 = default 30s)
}

// LoadConfig loads configuration from environment variables.
// Supports DATABASE_URL (for Render) or individual DB_* variables (for local dev).
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        os.Getenv("DB_HOST"),
			Port:        os.Getenv("DB_PORT"),
			User:        os.Getenv("DB_USER"),
			Password:    os.Getenv("DB_PASSWORD"),
			DBName:      os.Getenv("DB_NAME"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")), // PORT for Render/fly.io; SERVER_PORT for custom
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "suraksha-secret-change-in-production"),
			TokenExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 72),
			AdminToken:       os.Getenv("ADMIN_TOKEN"),
		},
		SOS: SOSConfig{
			SearchRadiusKm:                getEnvFloat("SOS_SEARCH_RADIUS_KM", 50),
			NearbyRadiusKm:                getEnvFloat("SOS_NEARBY_RADIUS_KM", 5),
			OfficersPerAlert:              getEnvInt("SOS_OFFICERS_PER_ALERT", 2),
			DispatchWorkerIntervalSeconds: getEnvInt("DISPATCH_WORKER_INTERVAL_SECONDS", 0),
			StationCacheTTLSeconds:        getEnvInt("STATION_CACHE_TTL_SECONDS", 60),
		},
		Notification: NotificationConfig{
			WorkerIntervalSeconds: getEnvInt("NOTIFICATION_WORKER_INTERVAL_SECONDS", 0),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
