// Package config loads settings from .env, config.yml and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Env                string `mapstructure:"APP_ENV"`
	Port               string `mapstructure:"PORT"`
	DBPath             string `mapstructure:"DB_PATH"`
	SessionSecret      string `mapstructure:"SESSION_SECRET"`
	AllowedOrigins     string `mapstructure:"ALLOWED_ORIGINS"`
	DebugKey           string `mapstructure:"DEBUG_KEY"`
	BackgroundImage    string `mapstructure:"BACKGROUND_IMAGE"`
	AdviceCatalogPath  string `mapstructure:"ADVICE_CATALOG_PATH"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

var defaults = map[string]any{
	"APP_ENV":               "development",
	"PORT":                  "8080",
	"DB_PATH":               "./nutriguide.db",
	"SESSION_SECRET":        "",
	"ALLOWED_ORIGINS":       "*",
	"DEBUG_KEY":             "",
	"BACKGROUND_IMAGE":      "./assets/background.jpg",
	"ADVICE_CATALOG_PATH":   "",
	"LOG_LEVEL":             "info",
	"RATE_LIMIT_PER_MINUTE": 30,
}

// Load reads .env (if present), then config.yml from the given directories
// (current and parent directory by default), then the environment. Later
// sources win.
func Load(dirs ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	if len(dirs) == 0 {
		dirs = []string{".", ".."}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")
	for k, val := range defaults {
		v.SetDefault(k, val)
		// Registering every key lets Unmarshal see values that only exist in the environment.
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("config.Load(): bind %s: %w", k, err)
		}
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.Load(): read config.yml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("DB_PATH is required")
	}
	if c.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.IsProduction() && len(c.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 characters in production")
	}
	return nil
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
