package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"Info json", Config{Level: "info", Format: "json"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"Warn", Config{Level: "warn"}, zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.muted))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud"})
	assert.Error(t, err)
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("without")
		c.Locals(RayIDKey, "abc-123")
		WithRayID(base, c).Info("with")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())
	assert.Equal(t, "abc-123", entries[1].ContextMap()["ray_id"])
}
