package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/gruntwork-io/globre/internal/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

const (
	noneMetricExporterType     metricExporterType = "none"
	consoleMetricExporterType  metricExporterType = "console"
	otlpHTTPMetricExporterType metricExporterType = "otlpHttp"
	grpcHTTPMetricExporterType metricExporterType = "grpcHttp"

	metricExportInterval = time.Second
)

type metricExporterType string

// Meter records durations and outcomes of measured functions.
type Meter struct {
	otelmetric.Meter
	provider *metric.MeterProvider
	exporter metric.Exporter
}

// NewMeter creates and configures the metrics collection.
// Returns a nil Meter if no exporter is configured.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := NewMetricsExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if exporter == nil {
		return nil, nil
	}

	provider, err := newMetricsProvider(exporter, appName, appVersion)
	if err != nil {
		return nil, errors.New(err)
	}

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
		exporter: exporter,
	}, nil
}

// NewMetricsExporter creates a new exporter based on the telemetry options.
func NewMetricsExporter(ctx context.Context, writer io.Writer, opts *Options) (metric.Exporter, error) {
	exporterType := metricExporterType(opts.MetricExporter)

	switch exporterType { //nolint:exhaustive
	case otlpHTTPMetricExporterType:
		var config []otlpmetrichttp.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	case grpcHTTPMetricExporterType:
		var config []otlpmetricgrpc.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, config...)
	case consoleMetricExporterType:
		return stdoutmetric.New(stdoutmetric.WithWriter(writer))
	default:
		return nil, nil
	}
}

// newMetricsProvider creates a new metrics provider.
func newMetricsProvider(exp metric.Exporter, appName, appVersion string) (*metric.MeterProvider, error) {
	r, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	return metric.NewMeterProvider(
		metric.WithResource(r),
		metric.WithReader(metric.NewPeriodicReader(exp, metric.WithInterval(metricExportInterval))),
	), nil
}

// Time measures the duration of fn and counts its successes and failures.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.exporter == nil || meter.provider == nil {
		return fn(ctx)
	}

	metricAttrs := otelmetric.WithAttributes(mapToAttributes(attrs)...)

	histogram, err := meter.Int64Histogram(CleanMetricName(name+"_duration"), otelmetric.WithUnit("us"))
	if err != nil {
		return fn(ctx)
	}

	startTime := time.Now()
	fnErr := fn(ctx)

	histogram.Record(ctx, time.Since(startTime).Microseconds(), metricAttrs)

	counterName := name + "_success_count"
	if fnErr != nil {
		counterName = name + "_errors_count"
	}

	if counter, err := meter.Int64Counter(CleanMetricName(counterName)); err == nil {
		counter.Add(ctx, 1, metricAttrs)
	}

	return fnErr
}
