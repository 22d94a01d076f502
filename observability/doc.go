// Package observability provides OpenTelemetry tracing and metrics for
// command dispatch.
//
// Both signals are off by default: with no provider installed the global
// otel providers are no-ops and every call here is cheap. Setup installs
// OTLP/HTTP exporters when the configuration enables them:
//
//	shutdown, err := observability.Setup(ctx, cfg.Telemetry, log)
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
//	metrics.RecordDispatch(ctx, "user", "GET", "ok", elapsed)
package observability
