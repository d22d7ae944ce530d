package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins; empty means any origin

	// Rate limiting
	RateLimitPerMinute int // per-IP request budget for the chat API

	// Gemini
	GeminiAPIKey    string
	GeminiModel     string
	GeminiTimeout   int     // client-side timeout in seconds
	Temperature     float64 // randomness of sampling
	TopK            float64 // candidate pool size
	TopP            float64 // cumulative probability cutoff
	MaxOutputTokens int     // hard length cap

	// Conversation
	HistoryWindow      int // bound on turns kept per session
	HistoryPromptTurns int // turns forwarded to the completion API

	// Assets
	CVPath string // well-known path of the downloadable CV
}

// Load reads configuration from environment variables with sensible defaults.
// A missing GEMINI_API_KEY is not an error here; the completion client
// reports it as an unconfigured outcome per request.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 100),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout:   getIntEnv("GEMINI_TIMEOUT_SECONDS", 8),
		Temperature:     getFloatEnv("GEMINI_TEMPERATURE", 0.7),
		TopK:            getFloatEnv("GEMINI_TOP_K", 40),
		TopP:            getFloatEnv("GEMINI_TOP_P", 0.95),
		MaxOutputTokens: getIntEnv("GEMINI_MAX_OUTPUT_TOKENS", 800),

		HistoryWindow:      getIntEnv("HISTORY_WINDOW", 20),
		HistoryPromptTurns: getIntEnv("HISTORY_PROMPT_TURNS", 10),

		CVPath: getEnv("CV_PATH", "/static/Cole_Lenting_CV.pdf"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasAPIKey reports whether a Gemini credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}
