package config

import "time"

// Config represents the complete stripectl configuration
type Config struct {
	Stripe  StripeConfig  `mapstructure:"stripe"`
	Client  ClientConfig  `mapstructure:"client"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StripeConfig holds API credentials and the connected account to act as
type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key" validate:"required,startswith=sk_|startswith=rk_"`
	Account   string `mapstructure:"account" validate:"omitempty,startswith=acct_"`
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
}

// ClientConfig tunes the HTTP client and CLI fan-out
type ClientConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Concurrency int           `mapstructure:"concurrency" validate:"min=1,max=32"`
}

// FilterConfig contains named filter expressions usable with --preset
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// MetricsConfig controls the Prometheus textfile written after each command
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}
