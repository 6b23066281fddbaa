package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"development defaults", Config{Env: "development", Port: "8080", DBPath: "x.db", RateLimitPerMinute: 30}, false},
		{"missing port", Config{Port: "", DBPath: "x.db", RateLimitPerMinute: 30}, true},
		{"missing db path", Config{Port: "8080", DBPath: " ", RateLimitPerMinute: 30}, true},
		{"zero rate limit", Config{Port: "8080", DBPath: "x.db"}, true},
		{"production short secret", Config{Env: "production", Port: "8080", DBPath: "x.db", RateLimitPerMinute: 30, SessionSecret: "short"}, true},
		{"production strong secret", Config{Env: "prod", Port: "8080", DBPath: "x.db", RateLimitPerMinute: 30, SessionSecret: "0123456789abcdef0123456789abcdef"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "  Development ")
	t.Setenv("DEBUG_KEY", "letmein")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "./nutriguide.db", cfg.DBPath)
	assert.Equal(t, "letmein", cfg.DebugKey)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, cfg.Origins())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yml := "DB_PATH: /tmp/from-file.db\nALLOWED_ORIGINS: http://a.test, http://b.test\nRATE_LIMIT_PER_MINUTE: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
