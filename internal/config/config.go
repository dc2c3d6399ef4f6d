package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCheckIPURL is the public endpoint that echoes the caller's IP as plain text
const DefaultCheckIPURL = "http://checkip.amazonaws.com/"

// Config holds all configuration for the application
type Config struct {
	Environment     string        `validate:"required"`
	Port            string        `validate:"required,numeric"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	Log             LogConfig
	CheckIP         CheckIPConfig
	RateLimit       RateLimitConfig
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=json text"`
}

// CheckIPConfig holds the outbound probe configuration.
// MaxAttempts of 1 means the probe is attempted once and never retried.
// Durations need a unit: a bare "5" parses as 5ns and fails the 1ms minimum.
type CheckIPConfig struct {
	URL          string        `validate:"required,http_url"`
	Timeout      time.Duration `validate:"min=1ms"`
	MaxAttempts  int           `validate:"gte=1"`
	InitialDelay time.Duration `validate:"min=1ms"`
	MaxDelay     time.Duration `validate:"gtefield=InitialDelay"`
}

// RateLimitConfig holds the greeting server rate limit. RPS of 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=1"`
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", 15*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CHECKIP_URL", DefaultCheckIPURL)
	v.SetDefault("CHECKIP_TIMEOUT", 5*time.Second)
	v.SetDefault("CHECKIP_MAX_ATTEMPTS", 1)
	v.SetDefault("CHECKIP_INITIAL_DELAY", 100*time.Millisecond)
	v.SetDefault("CHECKIP_MAX_DELAY", 2*time.Second)
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	cfg := &Config{
		Environment:     v.GetString("ENVIRONMENT"),
		Port:            v.GetString("PORT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CheckIP: CheckIPConfig{
			URL:          v.GetString("CHECKIP_URL"),
			Timeout:      v.GetDuration("CHECKIP_TIMEOUT"),
			MaxAttempts:  v.GetInt("CHECKIP_MAX_ATTEMPTS"),
			InitialDelay: v.GetDuration("CHECKIP_INITIAL_DELAY"),
			MaxDelay:     v.GetDuration("CHECKIP_MAX_DELAY"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the application runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
