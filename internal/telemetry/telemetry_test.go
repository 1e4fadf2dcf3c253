package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/gruntwork-io/globre/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

// syncBuffer is shared by the batching span processor and the periodic metric reader.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestNewTraceExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	http, err := otlptracehttp.New(ctx)
	require.NoError(t, err)

	grpc, err := otlptracegrpc.New(ctx)
	require.NoError(t, err)

	stdout, err := stdouttrace.New()
	require.NoError(t, err)

	tests := []struct {
		name         string
		opts         *telemetry.Options
		expectedType any
		expectError  bool
	}{
		{
			name:         "otlp http exporter",
			opts:         &telemetry.Options{TraceExporter: "otlpHttp"},
			expectedType: http,
		},
		{
			name:         "custom http endpoint",
			opts:         &telemetry.Options{TraceExporter: "http", TraceExporterHTTPEndpoint: "localhost:4318"},
			expectedType: http,
		},
		{
			name:        "custom http endpoint without endpoint",
			opts:        &telemetry.Options{TraceExporter: "http"},
			expectError: true,
		},
		{
			name:         "otlp grpc exporter",
			opts:         &telemetry.Options{TraceExporter: "otlpGrpc", TraceExporterInsecureEndpoint: true},
			expectedType: grpc,
		},
		{
			name:         "console exporter",
			opts:         &telemetry.Options{TraceExporter: "console"},
			expectedType: stdout,
		},
		{
			name: "no exporter",
			opts: &telemetry.Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exporter, err := telemetry.NewTraceExporter(ctx, io.Discard, tt.opts)
			if tt.expectError {
				require.Error(t, err)

				var missing *telemetry.ErrorMissingEnvVariable
				assert.ErrorAs(t, err, &missing)

				return
			}

			require.NoError(t, err)

			if tt.expectedType == nil {
				assert.Nil(t, exporter)

				return
			}

			assert.IsType(t, tt.expectedType, exporter)
		})
	}
}

func TestNewMetricsExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	http, err := otlpmetrichttp.New(ctx)
	require.NoError(t, err)

	grpc, err := otlpmetricgrpc.New(ctx)
	require.NoError(t, err)

	stdout, err := stdoutmetric.New()
	require.NoError(t, err)

	tests := []struct {
		name         string
		exporter     string
		expectedType any
	}{
		{name: "otlp http exporter", exporter: "otlpHttp", expectedType: http},
		{name: "grpc exporter", exporter: "grpcHttp", expectedType: grpc},
		{name: "console exporter", exporter: "console", expectedType: stdout},
		{name: "none exporter", exporter: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exporter, err := telemetry.NewMetricsExporter(ctx, io.Discard, &telemetry.Options{MetricExporter: tt.exporter})
			require.NoError(t, err)

			if tt.expectedType == nil {
				assert.Nil(t, exporter)

				return
			}

			assert.IsType(t, tt.expectedType, exporter)
		})
	}
}

func TestTelemeter_CollectConsole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := new(syncBuffer)

	tlm, err := telemetry.NewTelemeter(ctx, "globre", "v0.0.1", out, &telemetry.Options{
		TraceExporter:  "console",
		MetricExporter: "console",
	})
	require.NoError(t, err)
	require.NotNil(t, tlm.Tracer)
	require.NotNil(t, tlm.Meter)

	ctx = telemetry.ContextWithTelemeter(ctx, tlm)
	attrs := map[string]any{"glob.pattern": "*.go", "glob.length": 4}

	called := false
	err = telemetry.TelemeterFromContext(ctx).Collect(ctx, "glob_compile", attrs, func(ctx context.Context) error {
		called = true

		assert.NotEmpty(t, telemetry.TraceParentFromContext(ctx), "the wrapped function runs inside a span")

		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	compileErr := errors.New("unclosed character class")
	err = telemetry.TelemeterFromContext(ctx).Collect(ctx, "glob_compile", attrs, func(ctx context.Context) error {
		return compileErr
	})
	require.ErrorIs(t, err, compileErr)

	require.NoError(t, tlm.Shutdown(ctx))

	output := out.String()
	assert.Contains(t, output, "glob_compile")
	assert.Contains(t, output, "glob_compile_duration")
	assert.Contains(t, output, "glob_compile_success_count")
	assert.Contains(t, output, "glob_compile_errors_count")
	assert.Contains(t, output, "unclosed character class")
}

func TestTelemeterFromContext_NoTelemeter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	called := false
	err := telemetry.TelemeterFromContext(ctx).Collect(ctx, "glob_compile", nil, func(ctx context.Context) error {
		called = true

		assert.Empty(t, telemetry.TraceParentFromContext(ctx))

		return nil
	})

	require.NoError(t, err)
	assert.True(t, called, "callback should be called even without telemeter")
}

func TestNewTelemeter_NoExporters(t *testing.T) {
	t.Parallel()

	tlm, err := telemetry.NewTelemeter(context.Background(), "globre", "v0.0.1", io.Discard, telemetry.NewOptionsFromEnv(nil))
	require.NoError(t, err)
	assert.Nil(t, tlm.Tracer)
	assert.Nil(t, tlm.Meter)
	require.NoError(t, tlm.Shutdown(context.Background()))
}

func TestNewTracer_TraceParent(t *testing.T) {
	t.Parallel()

	const (
		traceID     = "4bf92f3577b34da6a3ce929d0e0e4736"
		traceParent = "00-" + traceID + "-00f067aa0ba902b7-01"
	)

	ctx := context.Background()

	tracer, err := telemetry.NewTracer(ctx, "globre", "v0.0.1", io.Discard, &telemetry.Options{
		TraceExporter: "console",
		TraceParent:   traceParent,
	})
	require.NoError(t, err)

	err = tracer.Trace(ctx, "glob_translate", nil, func(ctx context.Context) error {
		assert.Contains(t, telemetry.TraceParentFromContext(ctx), traceID)

		return nil
	})
	require.NoError(t, err)

	_, err = telemetry.NewTracer(ctx, "globre", "v0.0.1", io.Discard, &telemetry.Options{
		TraceExporter: "console",
		TraceParent:   "not-a-traceparent",
	})
	require.Error(t, err)
}

func TestNewOptionsFromEnv(t *testing.T) {
	t.Parallel()

	opts := telemetry.NewOptionsFromEnv(map[string]string{
		telemetry.EnvTraceExporter:                 "otlpHttp",
		telemetry.EnvTraceExporterInsecureEndpoint: "true",
		telemetry.EnvMetricExporter:                "console",
		telemetry.EnvTraceParent:                   "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
	})

	assert.Equal(t, "otlpHttp", opts.TraceExporter)
	assert.True(t, opts.TraceExporterInsecureEndpoint)
	assert.Equal(t, "console", opts.MetricExporter)
	assert.False(t, opts.MetricExporterInsecureEndpoint)
	assert.NotEmpty(t, opts.TraceParent)

	defaults := telemetry.NewOptionsFromEnv(map[string]string{})
	assert.Equal(t, "none", defaults.TraceExporter)
	assert.Equal(t, "none", defaults.MetricExporter)
}

func TestCleanMetricName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "glob_compile_duration", expected: "glob_compile_duration"},
		{input: "glob compile/duration", expected: "glob_compile_duration"},
		{input: "__glob**compile__", expected: "glob_compile"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, telemetry.CleanMetricName(tt.input), tt.input)
	}
}
