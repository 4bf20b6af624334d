//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypair_vault_service/internal/pkg/config"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLoggerAndGetLogger(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))

	first, err := GetLogger()
	require.NoError(t, err)
	require.NotNil(t, first)

	// Subsequent InitLogger calls keep the first instance.
	require.NoError(t, InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}))

	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetLoggerBeforeInit(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	_, err := GetLogger()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Run("ConsoleLogger", func(t *testing.T) {
		l, err := newLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		})
		require.NoError(t, err)
		assert.IsType(t, &ConsoleLogger{}, l)
	})

	t.Run("FileLogger", func(t *testing.T) {
		l, err := newLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelInfo,
			LogType:    config.LogTypeFile,
			FilePath:   filepath.Join(t.TempDir(), "app.log"),
			MaxSize:    1,
			MaxBackups: 1,
			MaxAge:     1,
		})
		require.NoError(t, err)
		assert.IsType(t, &FileLogger{}, l)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := newLogger(&config.LoggerSettings{
			LogLevel: "verbose",
			LogType:  config.LogTypeConsole,
		})
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "single", formatArgs("single"))
	assert.Equal(t, "code: 42", formatArgs("code: ", 42))
}
