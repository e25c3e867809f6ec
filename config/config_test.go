package config_test

import (
	"testing"

	"go-autoresponder-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")

	cfg, err := config.LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "xkeysib-test", cfg.BrevoAPIKey)
	assert.Equal(t, "contact@cjinashville.org", cfg.SenderEmail)
	assert.Equal(t, "Choosing Justice Initiative", cfg.SenderName)
	assert.Equal(t, 0, cfg.DedupWindowSeconds)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")
	t.Setenv("PORT", "8080")
	t.Setenv("SENDER_EMAIL", "hello@example.org")
	t.Setenv("SENDER_NAME", "Example Org")
	t.Setenv("DEDUP_WINDOW_SECONDS", "300")

	cfg, err := config.LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hello@example.org", cfg.SenderEmail)
	assert.Equal(t, "Example Org", cfg.SenderName)
	assert.Equal(t, 300, cfg.DedupWindowSeconds)
}

func TestLoadConfigFailsFast(t *testing.T) {
	t.Run("Missing API key", func(t *testing.T) {
		t.Setenv("BREVO_API_KEY", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("Malformed sender email", func(t *testing.T) {
		t.Setenv("BREVO_API_KEY", "xkeysib-test")
		t.Setenv("SENDER_EMAIL", "not-an-address")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestLoadConfigIgnoresJunkInt(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")
	t.Setenv("DEDUP_WINDOW_SECONDS", "soon")

	cfg, err := config.LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.DedupWindowSeconds)
}
