package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/spotlease/stripe-go/client"
)

// Environment variables that override the config file
const (
	EnvSecretKey = "STRIPE_SECRET_KEY"
	EnvAccount   = "STRIPE_ACCOUNT"
	EnvBaseURL   = "STRIPE_API_BASE"
)

// Load loads the configuration from file and environment. A missing config
// file is fine as long as the environment supplies the secret key; a
// configPath that does not exist is not.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("stripectl")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".stripectl"))
		}
		v.AddConfigPath("/etc/stripectl/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("stripe.base_url", client.DefaultBaseURL)
	v.SetDefault("stripe.account", "")

	v.SetDefault("client.timeout", "30s")
	v.SetDefault("client.concurrency", 4)

	v.SetDefault("metrics.textfile", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("stripe.secret_key", EnvSecretKey)
	_ = v.BindEnv("stripe.account", EnvAccount)
	_ = v.BindEnv("stripe.base_url", EnvBaseURL)

	v.SetEnvPrefix("STRIPECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

var structValidator = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their config key rather than the Go name
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace starts with the root type name
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", key)
	case "oneof":
		return fmt.Sprintf("invalid %s %q: must be one of %s", key, fe.Value(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be an absolute URL", key)
	}
	if key == "stripe.secret_key" {
		return "stripe.secret_key must be a secret (sk_) or restricted (rk_) key"
	}
	return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
}
