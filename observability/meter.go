package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/github2/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// Enabled turns on metric export.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// ServiceName is the name reported in the resource.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version reported in the resource.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig, log *logger.Logger) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(newResource(config.ServiceName, config.ServiceVersion, config.Environment)),
	)

	otel.SetMeterProvider(mp)

	log.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the dispatch instruments. A nil *Metrics records nothing.
type Metrics struct {
	dispatchTotal    metric.Int64Counter
	dispatchDuration metric.Float64Histogram
	errorTotal       metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	dispatchTotal, err := meter.Int64Counter("github2.dispatch.count",
		metric.WithDescription("Total number of dispatched API calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating github2.dispatch.count counter: %w", err)
	}

	dispatchDuration, err := meter.Float64Histogram("github2.dispatch.duration",
		metric.WithDescription("Duration of dispatched API calls in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating github2.dispatch.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("github2.dispatch.errors",
		metric.WithDescription("Dispatch failures by domain and kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating github2.dispatch.errors counter: %w", err)
	}

	return &Metrics{
		dispatchTotal:    dispatchTotal,
		dispatchDuration: dispatchDuration,
		errorTotal:       errorTotal,
	}, nil
}

// RecordDispatch records one completed dispatch.
func (m *Metrics) RecordDispatch(ctx context.Context, domain, verb, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dispatchTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("verb", verb),
		attribute.String("status", status),
	))
	m.dispatchDuration.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("verb", verb),
	))
}

// RecordError records a dispatch failure by kind (auth, lookup, transport, ...).
func (m *Metrics) RecordError(ctx context.Context, domain, kind string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("kind", kind),
	))
}
