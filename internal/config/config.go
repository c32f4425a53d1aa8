package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	// Empty DSN disables server-side session persistence.
	PostgresDSN string

	// Empty URL disables turn analytics events.
	NATSURL     string
	NATSSubject string

	// Empty API key keeps the advisor in scripted mode.
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	ChatHistoryWindow  int
	ChatRecommendLimit int

	// Empty path serves the built-in listings.
	CatalogPath string

	RateLimitRPS   float64
	RateLimitBurst int
	MaxInflight    int

	WorkerMetricsPort string
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		PostgresDSN: mustEnv("POSTGRES_DSN", ""),

		NATSURL:     mustEnv("NATS_URL", ""),
		NATSSubject: mustEnv("NATS_SUBJECT", "advisor.turns"),

		OpenAIBaseURL: mustEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:  mustEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   mustEnv("OPENAI_MODEL", "gpt-4o-mini"),

		ChatHistoryWindow:  mustEnvInt("CHAT_HISTORY_WINDOW", 10),
		ChatRecommendLimit: mustEnvInt("CHAT_RECOMMEND_LIMIT", 3),

		CatalogPath: mustEnv("CATALOG_PATH", ""),

		RateLimitRPS:   mustEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: mustEnvInt("RATE_LIMIT_BURST", 20),
		MaxInflight:    mustEnvInt("MAX_INFLIGHT_REQUESTS", 64),

		WorkerMetricsPort: mustEnv("WORKER_METRICS_PORT", "9090"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
