package config

import (
	"fmt"

	"github.com/kbukum/github2/logger"
	"github.com/kbukum/github2/observability"
	"github.com/kbukum/github2/transport"
)

// Config is the complete client configuration.
type Config struct {
	Base      BaseConfig           `yaml:"base" mapstructure:"base"`
	GitHub    transport.Config     `yaml:"github" mapstructure:"github"`
	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills every section. Telemetry inherits the service identity
// from Base.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	if c.Base.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.GitHub.ApplyDefaults()

	tracing := &c.Telemetry.Tracing
	defaults := observability.DefaultTracerConfig(c.Base.Name)
	if tracing.ServiceName == "" {
		tracing.ServiceName = c.Base.Name
	}
	if tracing.ServiceVersion == "" {
		tracing.ServiceVersion = c.Base.Version
	}
	if tracing.Environment == "" {
		tracing.Environment = c.Base.Environment
	}
	if tracing.Endpoint == "" {
		tracing.Endpoint = defaults.Endpoint
	}
	if tracing.SampleRate == 0 {
		tracing.SampleRate = defaults.SampleRate
	}

	metrics := &c.Telemetry.Metrics
	meterDefaults := observability.DefaultMeterConfig(c.Base.Name)
	if metrics.ServiceName == "" {
		metrics.ServiceName = c.Base.Name
	}
	if metrics.ServiceVersion == "" {
		metrics.ServiceVersion = c.Base.Version
	}
	if metrics.Environment == "" {
		metrics.Environment = c.Base.Environment
	}
	if metrics.Endpoint == "" {
		metrics.Endpoint = meterDefaults.Endpoint
	}
	if metrics.Interval <= 0 {
		metrics.Interval = meterDefaults.Interval
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.GitHub.Validate(); err != nil {
		return fmt.Errorf("github: %w", err)
	}
	return nil
}
