package config

import (
	"os"
	"time"
)

type Config struct {
	// HTTP configuration
	Port        string
	CORSOrigins string

	// Catalog configuration
	CatalogPath string

	// Redis configuration
	RedisURL   string
	SessionTTL time.Duration

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Razorpay configuration
	RazorpayKeyID     string
	RazorpayKeySecret string

	// NATS configuration (optional transport, disabled when URL is empty)
	NatsURL            string
	NatsRequestSubject string
	NatsTimeout        time.Duration

	// Service configuration
	ServiceName string
}

func Load() *Config {
	return &Config{
		// HTTP settings
		Port:        getEnv("PORT", "4000"),
		CORSOrigins: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		// Catalog settings
		CatalogPath: getEnv("CATALOG_PATH", "data/products.json"),

		// Redis settings
		RedisURL:   getEnv("REDIS_URL", "redis://127.0.0.1:6379"),
		SessionTTL: getDurationEnv("SESSION_TTL", 24*time.Hour),

		// OpenAI settings
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout: getDurationEnv("OPENAI_TIMEOUT", 8*time.Second),

		// Razorpay settings
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		// NATS settings
		NatsURL:            getEnv("NATS_URL", ""),
		NatsRequestSubject: getEnv("NATS_REQUEST_SUBJECT", "stylist.chat"),
		NatsTimeout:        getDurationEnv("NATS_TIMEOUT", 30*time.Second),

		// Service settings
		ServiceName: getEnv("SERVICE_NAME", "stylist-intent"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
