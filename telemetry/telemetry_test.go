package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/telemetry"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	cases := []telemetry.Config{
		telemetry.DefaultConfig(),
		{ServiceName: "test", ServiceVersion: "1.0.0", Environment: "test", EnableTracing: true, EnableMetrics: true},
		{ServiceName: "test", ServiceVersion: "1.0.0", Environment: "test", EnableTracing: false, EnableMetrics: true},
		{ServiceName: "test", ServiceVersion: "1.0.0", Environment: "test", EnableTracing: true, EnableMetrics: false},
		{ServiceName: "test", ServiceVersion: "1.0.0", Environment: "test", EnableTracing: false, EnableMetrics: false},
	}

	for _, cfg := range cases {
		p, err := telemetry.NewProvider(ctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, p)

		if cfg.EnableTracing {
			require.NotNil(t, p.Tracer())
		} else {
			require.Nil(t, p.Tracer())
		}
		if cfg.EnableMetrics {
			require.NotNil(t, p.Meter())
			require.NotNil(t, p.Registry())
		} else {
			require.Nil(t, p.Meter())
			require.Nil(t, p.Registry())
		}
	}
}

func TestNewProvider_DefaultsServiceName(t *testing.T) {
	p, err := telemetry.NewProvider(context.Background(), telemetry.Config{EnableMetrics: true})
	require.NoError(t, err)
	require.NotNil(t, p.Meter())
}
