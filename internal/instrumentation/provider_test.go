package instrumentation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.NotNil(t, provider.Metrics(), "disabled provider still hands out a no-op recorder")
	assert.Nil(t, provider.PrometheusHandler())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProviderPrometheus(t *testing.T) {
	config := DefaultConfig()
	config.ServiceName = "ip-assistant-test"
	config.ServiceVersion = "test"
	config.MetricsExporter = ExporterPrometheus
	config.TracingExporter = ExporterNone

	provider, err := NewProvider(context.Background(), config)
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.True(t, provider.Enabled())
	assert.NotNil(t, provider.Metrics())
	assert.NotNil(t, provider.PrometheusHandler())
	assert.NotNil(t, provider.Tracer("test"))
}

func TestNewProviderUnknownExporter(t *testing.T) {
	config := DefaultConfig()
	config.MetricsExporter = "statsd"

	_, err := NewProvider(context.Background(), config)
	assert.ErrorContains(t, err, "unsupported metrics exporter")
}
