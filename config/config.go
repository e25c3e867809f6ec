package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Brevo transactional email API
	BrevoAPIKey string `validate:"required"`
	// Sender identity for outbound acknowledgment emails.
	// Must be a verified sender in Brevo.
	SenderEmail string `validate:"required,email"`
	SenderName  string
	// Webhook dedup window in seconds. 0 disables dedup entirely, which
	// means a redelivered webhook triggers a second acknowledgment email.
	DedupWindowSeconds int
	// Redis/Upstash Configuration (optional dedup backend)
	UpstashRedisURL      string
	UpstashRedisPassword string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		SenderEmail:        getEnv("SENDER_EMAIL", "contact@cjinashville.org"),
		SenderName:         getEnv("SENDER_NAME", "Choosing Justice Initiative"),
		DedupWindowSeconds: getEnvInt("DEDUP_WINDOW_SECONDS", 0),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
	}

	// Fail fast on missing provider credentials instead of deferring the
	// discovery to the first delivery attempt.
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
