package client

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the API origin used when no base URL option is given.
const DefaultBaseURL = "https://api.stripe.com/v1"

// Config holds the credentials and endpoint a Client talks to.
//
// The secret key and base URL never change after NewConfig returns, so a
// Config can be read by any number of concurrent requests. The default
// account is the one mutable field; see SetAccount.
type Config struct {
	secretKey string
	baseURL   *url.URL
	account   string
}

// ConfigOption configures a Config.
type ConfigOption func(*configOptions)

type configOptions struct {
	baseURL string
	account string
}

// WithBaseURL points the client at a different API origin, such as a
// local mock server. The value must be an absolute URL.
func WithBaseURL(raw string) ConfigOption {
	return func(o *configOptions) {
		o.baseURL = raw
	}
}

// WithAccount sets the default connected account sent in the
// Stripe-Account header.
func WithAccount(id string) ConfigOption {
	return func(o *configOptions) {
		o.account = id
	}
}

// NewConfig creates a configuration for secretKey. It fails with a
// *ConfigError when the base URL is not a valid absolute URL.
func NewConfig(secretKey string, opts ...ConfigOption) (*Config, error) {
	options := configOptions{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(&options)
	}

	base, err := parseBaseURL(options.baseURL)
	if err != nil {
		return nil, &ConfigError{Field: "base URL", Value: options.baseURL, Err: err}
	}

	return &Config{
		secretKey: secretKey,
		baseURL:   base,
		account:   options.account,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.New("must be an absolute URL with scheme and host")
	}

	// Paths are appended verbatim, so drop the trailing slash
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u, nil
}

// Derive returns a copy of the configuration whose default account is
// account. The receiver is not modified, so one base Config can serve many
// accounts concurrently.
func (c *Config) Derive(account string) *Config {
	derived := *c
	derived.account = account
	return &derived
}

// SetAccount replaces the default account in place. It must not be called
// while requests using this Config are in flight; use Derive when accounts
// vary between concurrent calls.
func (c *Config) SetAccount(account string) {
	c.account = account
}

// Account returns the default account, or "" when none is set.
func (c *Config) Account() string {
	return c.account
}

// BaseURL returns the API origin requests are resolved against.
func (c *Config) BaseURL() string {
	return c.baseURL.String()
}

// String describes the configuration without revealing the secret key.
func (c *Config) String() string {
	return fmt.Sprintf("Config{baseURL: %s, account: %q}", c.BaseURL(), c.account)
}
