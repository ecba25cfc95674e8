package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	LogLevel string

	// Browser origins allowed to call the API.
	CORSOrigins []string

	AnthropicBaseURL  string
	OpenAIBaseURL     string
	XAIBaseURL        string
	OpenRouterBaseURL string

	OTLPEndpoint string

	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:              getEnv("ADDR", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       getCSVEnv("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		AnthropicBaseURL:  getEnv("ANTHROPIC_BASE_URL", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		XAIBaseURL:        getEnv("XAI_BASE_URL", ""),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", ""),
		OTLPEndpoint:      getEnv("OTLP_ENDPOINT", ""),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getCSVEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
