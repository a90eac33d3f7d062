package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Katzuo/LevelEngine/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates logger with JSON format and stdout output", func(t *testing.T) {
		cfg := &config.LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		}

		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, logger)

		// Verify logger can log without errors
		logger.Info("test message")
	})

	t.Run("creates logger with text format", func(t *testing.T) {
		cfg := &config.LoggingConfig{
			Level:  "debug",
			Format: "text",
			Output: "stdout",
		}

		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, logger)

		logger.Debug("test debug message")
	})

	t.Run("creates logger with file output", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "test.log")

		cfg := &config.LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: logFile,
		}

		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, logger)

		logger.Info("file test message")
		require.NoError(t, logger.Sync())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "file test message")

		// Each line is a standalone JSON document
		line := strings.SplitN(strings.TrimSpace(string(data)), "\n", 2)[0]
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("fails on unwritable file path", func(t *testing.T) {
		cfg := &config.LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: "/nonexistent-dir/test.log",
		}

		_, err := NewLogger(cfg)
		assert.Error(t, err)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestLogger_WithTraceID(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "trace.log")

	cfg := &config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.WithTraceID("trace-abc").Info("traced message")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"trace_id":"trace-abc"`)
}

func TestLogger_WithContext(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "ctx.log")

	cfg := &config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	ctx := WithTraceID(context.Background(), "ctx-trace-1")
	logger.WithContext(ctx).Info("message with context")

	// A context without trace ID returns the logger unchanged
	assert.Same(t, logger, logger.WithContext(context.Background()))

	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"trace_id":"ctx-trace-1"`)
}

func TestLogger_WithGuild(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "guild.log")

	cfg := &config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.WithGuild(42).Info("guild scoped")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"guild_id":42`)
}
