package telemetry

import (
	"context"
	"testing"

	"jobboard-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(config.TracingConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Enabled(t *testing.T) {
	shutdown, err := InitTracer(config.TracingConfig{Enabled: true, ServiceName: "jobboard-api-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
