package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_DB_URI", "")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_DB_URI")
}

func TestLoadConfigRejectsBadMongoScheme(t *testing.T) {
	t.Setenv("MONGO_DB_URI", "postgres://localhost:5432")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mongodb://")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_DB_URI", "mongodb://localhost:27017")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("APP_ENV", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigParsesSMTPPort(t *testing.T) {
	t.Setenv("MONGO_DB_URI", "mongodb+srv://cluster0.example.net")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.True(t, cfg.IsProduction())
}
