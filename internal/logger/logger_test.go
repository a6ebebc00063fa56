package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestConfig(t *testing.T) {
	cfg := Config("warn")

	assert.Equal(t, "json", cfg.Encoding)
	assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
	assert.Equal(t, "log_level", cfg.EncoderConfig.LevelKey)
	assert.Equal(t, "message", cfg.EncoderConfig.MessageKey)
	assert.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
	assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
}

func TestNew(t *testing.T) {
	log, err := New("debug")

	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
