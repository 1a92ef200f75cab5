package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	id := GenerateRequestID()
	require.NotEmpty(t, id)

	ctx := WithRequestID(context.Background(), id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestRequestIDMissing(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level  string
		expect string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.expect, cfg.LogLevel().String())
		})
	}
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())
}
