package config

import (
	"fmt"

	"github.com/kbukum/github2/validation"
	"github.com/kbukum/github2/version"
)

// DefaultName is the service name used when none is configured.
const DefaultName = "github2"

// BaseConfig identifies the running client in logs and telemetry.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults fills the name, the development environment and the build
// version.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Version == "" {
		c.Version = version.Version
	}
}

// Validate checks the name and the environment.
func (c *BaseConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("base: %w", err)
	}
	return nil
}
