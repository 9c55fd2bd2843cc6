package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "1h", cfg.JWT.AccessExpiration)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "23:30", cfg.Cron.AbsenteeCheckAt)
	assert.True(t, cfg.Cron.Enabled)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestFromEnv_Postgres(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_PASSWORD", "root")
	t.Setenv("DB_HOST", "db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://postgres:root@db:5432/hris_admin?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{}, "JWT_SECRET_KEY"},
		{"postgres without password", map[string]string{"JWT_SECRET_KEY": "s", "STORE_DRIVER": "postgres"}, "DB_PASSWORD"},
		{"unknown driver", map[string]string{"JWT_SECRET_KEY": "s", "STORE_DRIVER": "sqlite"}, "STORE_DRIVER"},
		{"bad port", map[string]string{"JWT_SECRET_KEY": "s", "APP_PORT": "http"}, "APP_PORT"},
		{"bad lifetime", map[string]string{"JWT_SECRET_KEY": "s", "JWT_ACCESS_EXPIRATION_TIME": "forever"}, "JWT_ACCESS_EXPIRATION_TIME"},
		{"bad cron time", map[string]string{"JWT_SECRET_KEY": "s", "CRON_ABSENTEE_CHECK_AT": "25:00"}, "CRON_ABSENTEE_CHECK_AT"},
		{"bad bool", map[string]string{"JWT_SECRET_KEY": "s", "CRON_ENABLED": "sometimes"}, "CRON_ENABLED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
