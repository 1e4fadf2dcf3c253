package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

func TestNewResource(t *testing.T) {
	t.Parallel()

	r, err := newResource("globre", "v1.2.3")
	require.NoError(t, err)

	assert.Equal(t, resource.Default().SchemaURL(), r.SchemaURL())
	assert.Equal(t, semconv.SchemaURL, r.SchemaURL())

	name, ok := r.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "globre", name.AsString())

	version, ok := r.Set().Value(semconv.ServiceVersionKey)
	require.True(t, ok)
	assert.Equal(t, "v1.2.3", version.AsString())
}
