package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	AnthropicAPIKey string

	// Mailers (at least one must be configured to send)
	ResendAPIKey          string
	EmailFrom             string
	GoogleCredentialsFile string
	GoogleTokenFile       string

	// Optional with defaults
	DBPath              string
	HTTPPort            int
	ClaudeModel         string
	ClaudeTemperature   float64
	PollIntervalMinutes int
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		// Mailers
		ResendAPIKey:          os.Getenv("RESEND_API_KEY"),
		EmailFrom:             getEnvOrDefault("GIGPITCH_EMAIL_FROM", "GigPitch <outreach@gigpitch.app>"),
		GoogleCredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		GoogleTokenFile:       getEnvOrDefault("GOOGLE_TOKEN_FILE", "./token.json"),

		// Optional with defaults
		DBPath:              getEnvOrDefault("GIGPITCH_DB_PATH", "./gigpitch.db"),
		HTTPPort:            getEnvAsIntOrDefault("GIGPITCH_HTTP_PORT", 8080),
		ClaudeModel:         getEnvOrDefault("GIGPITCH_CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ClaudeTemperature:   getEnvAsFloatOrDefault("GIGPITCH_CLAUDE_TEMPERATURE", 0.7),
		PollIntervalMinutes: getEnvAsIntOrDefault("GIGPITCH_POLL_INTERVAL_MINUTES", 5),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
