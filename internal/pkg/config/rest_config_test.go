//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfigFile(t, "port: [not closed")
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("MissingPort", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidDatabaseSettings", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: mysql
  dsn: "whatever"
`)
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
