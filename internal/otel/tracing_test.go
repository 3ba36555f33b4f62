package otel

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		name, arg string
		want      string
	}{
		{"always_on", "", "AlwaysOnSampler"},
		{"always_off", "", "AlwaysOffSampler"},
		{"traceidratio", "0.25", "TraceIDRatioBased{0.25}"},
		{"traceidratio", "garbage", "AlwaysOnSampler"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, sampler(tt.name, tt.arg).Description())
		})
	}

	assert.True(t, strings.HasPrefix(sampler("parentbased_traceidratio", "0.5").Description(), "ParentBased{root:TraceIDRatioBased{0.5}"))
	assert.True(t, strings.HasPrefix(sampler("who_knows", "").Description(), "ParentBased{root:AlwaysOnSampler"))
}

func TestInit(t *testing.T) {
	t.Run("sdk disabled", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "true")
		var buf bytes.Buffer

		shutdown, err := Init(context.Background(), zerolog.New(&buf))
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
		assert.Contains(t, buf.String(), `"tracing_enabled":false`)
	})

	t.Run("unknown protocol degrades", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "false")
		t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
		var buf bytes.Buffer

		shutdown, err := Init(context.Background(), zerolog.New(&buf))
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
		assert.Contains(t, buf.String(), "tracing_init_failed")
	})
}
