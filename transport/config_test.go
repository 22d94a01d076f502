package transport

import (
	"testing"
	"time"

	"github.com/kbukum/github2/errors"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base url %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Format != "json" {
		t.Errorf("expected json format, got %s", cfg.Format)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.RateLimit.Enabled() {
		t.Error("expected pacing to be off by default")
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		c := Config{}
		c.ApplyDefaults()
		return c
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"access token only", func(c *Config) { c.AccessToken = "x" }, false},
		{"api token with login", func(c *Config) { c.Login, c.APIToken = "me", "x" }, false},
		{"api token without login", func(c *Config) { c.APIToken = "x" }, true},
		{"bad base url", func(c *Config) { c.BaseURL = "not a url" }, true},
		{"unsupported format", func(c *Config) { c.Format = "xml" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
