package observability

import (
	"context"
	"errors"

	"github.com/kbukum/github2/logger"
)

// Config groups the tracing and metrics settings.
type Config struct {
	Tracing TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(ctx context.Context) error

// Setup installs the providers enabled in cfg. With nothing enabled it
// installs nothing and returns a no-op shutdown.
func Setup(ctx context.Context, cfg Config, log *logger.Logger) (ShutdownFunc, error) {
	var shutdowns []ShutdownFunc
	shutdown := func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Tracing.Enabled {
		tp, err := InitTracer(ctx, cfg.Tracing, log)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, tp.Shutdown)
	}
	if cfg.Metrics.Enabled {
		mp, err := InitMeter(ctx, cfg.Metrics, log)
		if err != nil {
			return shutdown, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, mp.Shutdown)
	}
	return shutdown, nil
}
