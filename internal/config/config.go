// Package config loads runtime settings from the environment, with
// defaults suitable for local development.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	BaseURL     string

	SupabaseURL        string
	SupabaseServiceKey string
	StorageBucket      string
	DatabaseURL        string

	RecaptchaSecretKey string
	RecaptchaSiteKey   string

	ResendAPIKey string
	NotifyEmail  string
	EmailFrom    string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	LogLevel string
}

// Load reads every setting from the environment. Defaults cover the knobs
// that have a sensible local value; credentials never default.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("SUPABASE_STORAGE_BUCKET", "orders")
	v.SetDefault("EMAIL_FROM", "AnonPrint <onboarding@resend.dev>")
	v.SetDefault("RATE_LIMIT_REQUESTS", 5)
	v.SetDefault("RATE_LIMIT_WINDOW", "10m")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Port:               v.GetString("PORT"),
		Environment:        v.GetString("ENVIRONMENT"),
		BaseURL:            v.GetString("BASE_URL"),
		SupabaseURL:        v.GetString("SUPABASE_URL"),
		SupabaseServiceKey: v.GetString("SUPABASE_SERVICE_KEY"),
		StorageBucket:      v.GetString("SUPABASE_STORAGE_BUCKET"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RecaptchaSecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
		RecaptchaSiteKey:   v.GetString("RECAPTCHA_SITE_KEY"),
		ResendAPIKey:       v.GetString("RESEND_API_KEY"),
		NotifyEmail:        v.GetString("NOTIFY_EMAIL"),
		EmailFrom:          v.GetString("EMAIL_FROM"),
		RateLimitRequests:  v.GetInt("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:    v.GetDuration("RATE_LIMIT_WINDOW"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if c.RecaptchaSecretKey == "" {
		return fmt.Errorf("RECAPTCHA_SECRET_KEY is required")
	}
	if c.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration")
	}
	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
