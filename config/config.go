// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Google    GoogleConfig
	Store     StoreConfig
	Assistant AssistantConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Environment    string
	FrontendURL    string
	AllowedOrigins []string
}

// LLMConfig holds the completion model configuration.
type LLMConfig struct {
	GeminiAPIKey string
	Timeout      time.Duration
}

// GoogleConfig holds the Google Calendar OAuth configuration.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenFile    string
	Timeout      time.Duration
}

// StoreConfig holds file store configuration.
type StoreConfig struct {
	GoalsFile string
}

// AssistantConfig holds assistant behavior configuration.
type AssistantConfig struct {
	Timezone string
}

// Load loads configuration from environment variables.
func Load() *Config {
	frontendURL := getEnv("FRONTEND_URL", "http://localhost:5173")
	return &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:    getEnv("ENV", "development"),
			FrontendURL:    frontendURL,
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{frontendURL}),
		},
		LLM: LLMConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			Timeout:      getEnvAsDuration("LLM_TIMEOUT", 10*time.Second),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/google/oauth2callback"),
			TokenFile:    getEnv("GOOGLE_TOKEN_FILE", "token.json"),
			Timeout:      getEnvAsDuration("CALENDAR_TIMEOUT", 5*time.Second),
		},
		Store: StoreConfig{
			GoalsFile: getEnv("GOALS_FILE", "goals.json"),
		},
		Assistant: AssistantConfig{
			Timezone: getEnv("ASSISTANT_TIMEZONE", "Europe/Berlin"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
