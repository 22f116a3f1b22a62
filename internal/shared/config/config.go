package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string
	LogFormat       string
	APIKey          string

	MaxFileSizeBytes    int64
	AllowedContentTypes []string

	ParseTimeout      time.Duration
	FieldTimeout      time.Duration
	CoordinatorBudget time.Duration

	LLMProvider   string
	LLMModel      string
	LLMMaxRetries int
	LLMRetryBase  time.Duration
}

const (
	defaultMaxFileSize       = 10 << 20
	defaultParseTimeout      = 30 * time.Second
	defaultFieldTimeout      = 30 * time.Second
	defaultCoordinatorBudget = 20 * time.Second
	defaultLLMMaxRetries     = 2
	defaultLLMRetryBase      = 300 * time.Millisecond
)

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		APIKey:          os.Getenv("API_KEY"),

		MaxFileSizeBytes: getEnvInt64("MAX_FILE_SIZE_BYTES", defaultMaxFileSize),
		AllowedContentTypes: splitAndTrim(getEnv("ALLOWED_CONTENT_TYPES",
			"application/pdf,application/vnd.openxmlformats-officedocument.wordprocessingml.document")),

		ParseTimeout:      getEnvSeconds("PARSE_TIMEOUT_SECONDS", defaultParseTimeout),
		FieldTimeout:      getEnvSeconds("FIELD_TIMEOUT_SECONDS", defaultFieldTimeout),
		CoordinatorBudget: getEnvSeconds("COORDINATOR_TIMEOUT_SECONDS", defaultCoordinatorBudget),

		LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
		LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxRetries: getEnvInt("LLM_MAX_RETRIES", defaultLLMMaxRetries),
		LLMRetryBase:  getEnvMillis("LLM_RETRY_BASE_MS", defaultLLMRetryBase),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func getEnvMillis(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Millisecond
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
