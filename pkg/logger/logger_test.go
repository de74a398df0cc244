package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/limaJavier/timetable-engine/pkg/config"
)

func TestNew(t *testing.T) {
	scenarios := []struct {
		name     string
		cfg      config.Config
		expected zapcore.Level
	}{
		{"Development console", config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "debug", Format: "console"}}, zapcore.DebugLevel},
		{"Production json", config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}}, zapcore.WarnLevel},
		{"Unknown level falls back to info", config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "loud"}}, zapcore.InfoLevel},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			//** Act
			logger, err := New(&scenario.cfg)

			//** Assert
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(scenario.expected))
			assert.False(t, logger.Core().Enabled(scenario.expected-1))
		})
	}
}
