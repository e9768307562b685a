package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	UploadDir   string
	MaxUploadMB int64
	FrontendURL string

	JWTSecret       string
	JWTExpiresHours int

	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	ClaudeAPIKey string
	ClaudeModel  string

	DefaultAIProvider string
}

func Load() AppConfig {
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}

	return AppConfig{
		Port:        get("PORT", "5000"),
		DBPath:      get("DB_PATH", "peerplan.db"),
		UploadDir:   get("UPLOAD_DIR", "./uploads"),
		MaxUploadMB: int64(getInt("MAX_UPLOAD_MB", 10)),
		FrontendURL: get("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret:       get("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiresHours: getInt("JWT_EXPIRES_HOURS", 168),

		OpenAIAPIKey: get("OPENAI_API_KEY", ""),
		OpenAIModel:  get("OPENAI_MODEL", "gpt-4-turbo-preview"),
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-pro"),
		ClaudeAPIKey: get("CLAUDE_API_KEY", ""),
		ClaudeModel:  get("CLAUDE_MODEL", "claude-3-sonnet-20240229"),

		DefaultAIProvider: get("DEFAULT_AI_PROVIDER", "openai"),
	}
}

// IsProviderConfigured reports whether the named provider has a credential.
// An unconfigured provider is never attempted.
func (c AppConfig) IsProviderConfigured(provider string) bool {
	switch strings.ToLower(provider) {
	case "openai":
		return c.OpenAIAPIKey != ""
	case "gemini":
		return c.GeminiAPIKey != ""
	case "claude":
		return c.ClaudeAPIKey != ""
	}
	return false
}
