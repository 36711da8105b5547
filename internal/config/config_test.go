package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for key, value := range map[string]string{
		"DATABASE_DSN":            "postgres://localhost/test",
		"INITIAL_ADMIN_PASSWORD":  "secreto",
		"INITIAL_ADMIN_EMAIL":     "admin@example.com",
		"JWT_SECRET":              "secreto",
		"SEED_USER_PASSWORD":      "secreto",
		"EMAIL_USER_DOMAIN":       "example.com",
		"EMAIL_SMTP_USERNAME":     "mailer",
		"EMAIL_SMTP_PASSWORD":     "secreto",
		"EMAIL_SMTP_HOST":         "smtp.example.com",
		"RABBITMQ_DSN":            "amqp://localhost",
		"REDIS_PASSWORD":          "secreto",
	} {
		t.Setenv(key, value)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/test", cfg.Database.DSN)
	// Los valores con default quedan cargados sin variable de entorno
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 1209600, cfg.JWT.Expiration)
}

// Cualquier falla de parseo tiene que devolver error, nunca una
// configuración a medio cargar con error nil.
func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("DATABASE_DSN")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
