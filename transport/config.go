package transport

import (
	"net/http"
	"time"

	"github.com/kbukum/github2/resilience"
	"github.com/kbukum/github2/validation"
	"github.com/kbukum/github2/version"
)

const (
	DefaultBaseURL = "https://github.com/api/v2"
	DefaultFormat  = "json"
	DefaultTimeout = 30 * time.Second
)

// Config configures the API transport.
type Config struct {
	// BaseURL is the API root, without the format segment.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	// Format is the response format segment of every URL.
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=json"`
	// Login is the account the API token belongs to.
	Login string `yaml:"login" mapstructure:"login" validate:"required_with=APIToken"`
	// APIToken is the legacy per-account token, sent with Login.
	APIToken string `yaml:"api_token" mapstructure:"api_token"`
	// AccessToken is an OAuth access token.
	AccessToken string `yaml:"access_token" mapstructure:"access_token"`
	// Timeout bounds each HTTP round trip.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
	// Headers are added to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
	// RateLimit paces requests. A zero rate disables pacing.
	RateLimit resilience.LimiterConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

func (c *Config) header() http.Header {
	h := make(http.Header, len(c.Headers)+2)
	h.Set("User-Agent", version.UserAgent())
	h.Set("Accept", "application/json")
	for k, v := range c.Headers {
		h.Set(k, v)
	}
	return h
}
