package telemetry

import (
	"github.com/gruntwork-io/go-commons/env"
)

// Environment variables read by NewOptionsFromEnv.
const (
	EnvTraceExporter                  = "GLOBRE_TELEMETRY_TRACE_EXPORTER"
	EnvTraceExporterHTTPEndpoint      = "GLOBRE_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"
	EnvTraceExporterInsecureEndpoint  = "GLOBRE_TELEMETRY_TRACE_EXPORTER_INSECURE_ENDPOINT"
	EnvMetricExporter                 = "GLOBRE_TELEMETRY_METRIC_EXPORTER"
	EnvMetricExporterInsecureEndpoint = "GLOBRE_TELEMETRY_METRIC_EXPORTER_INSECURE_ENDPOINT"
	EnvTraceParent                    = "TRACEPARENT"
)

// Options configures the trace and metric exporters.
type Options struct {
	TraceExporter                  string
	TraceExporterHTTPEndpoint      string
	TraceParent                    string
	MetricExporter                 string
	TraceExporterInsecureEndpoint  bool
	MetricExporterInsecureEndpoint bool
}

// NewOptionsFromEnv builds Options from the given environment variables, typically
// the result of parsing os.Environ().
func NewOptionsFromEnv(vars map[string]string) *Options {
	return &Options{
		TraceExporter:                  env.GetString(vars[EnvTraceExporter], string(noneTraceExporterType)),
		TraceExporterHTTPEndpoint:      env.GetString(vars[EnvTraceExporterHTTPEndpoint], ""),
		TraceExporterInsecureEndpoint:  env.GetBool(vars[EnvTraceExporterInsecureEndpoint], false),
		TraceParent:                    env.GetString(vars[EnvTraceParent], ""),
		MetricExporter:                 env.GetString(vars[EnvMetricExporter], string(noneMetricExporterType)),
		MetricExporterInsecureEndpoint: env.GetBool(vars[EnvMetricExporterInsecureEndpoint], false),
	}
}
