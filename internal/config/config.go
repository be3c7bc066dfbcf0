package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// PlaceholderAPIKey is the value shipped in the sample .env file. It is
// accepted at startup but reported as not ready.
const PlaceholderAPIKey = "your_gemini_api_key_here"

const (
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

var productionOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"https://your-firebase-app.web.app",
	"https://your-firebase-app.firebaseapp.com",
}

type Config struct {
	AppEnv           string
	AppName          string
	AppVersion       string
	AppPort          string
	CORSAllowOrigins []string
	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string
	AIProvider       string
	AITimeoutSeconds int
	OTelEnabled      bool
}

func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		AppEnv:           getEnv("NODE_ENV", "development"),
		AppName:          getEnv("APP_NAME", "moodsync-api"),
		AppVersion:       getEnv("APP_VERSION", "2.0"),
		AppPort:          getEnv("PORT", "8080"),
		CORSAllowOrigins: getEnvCSV("CORS_ALLOW_ORIGINS", productionOrigins),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", ""),
		AIProvider:       strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 30),
		OTelEnabled:      getEnvBool("OTEL_ENABLED", false),
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return errors.New("GEMINI_API_KEY environment variable is required")
	}
	switch c.AIProvider {
	case ProviderGemini, ProviderMock:
	default:
		return errors.New("AI_PROVIDER must be one of: gemini, mock")
	}
	if strings.TrimSpace(c.AppPort) == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// IsProduction reports whether the restrictive CORS allowlist applies.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "production")
}

// Ready reports whether a usable backend key is configured.
func (c Config) Ready() bool {
	key := strings.TrimSpace(c.GeminiAPIKey)
	return key != "" && key != PlaceholderAPIKey
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvCSV(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, item := range parts {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
