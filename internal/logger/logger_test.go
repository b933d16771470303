package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// readEntries returns the JSON entries written to path.
func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var entry map[string]interface{}
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_LevelFallbackIsLogged(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Config{Level: "loud", OutputPath: out, Service: "login"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	_ = log.Sync()

	entries := readEntries(t, out)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "Invalid log level, using info", entries[0]["msg"])
	assert.Equal(t, "loud", entries[0]["logLevel"])
}

func TestNew_UnsupportedEncoding(t *testing.T) {
	_, err := New(Config{Encoding: "yaml"})
	assert.Error(t, err)
}

func TestNew_LambdaFields(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "userapp-login")
	t.Setenv("AWS_LAMBDA_FUNCTION_VERSION", "7")
	out := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Config{Level: "debug", OutputPath: out, Service: "login"})
	require.NoError(t, err)
	log.Debug("hello")
	_ = log.Sync()

	entries := readEntries(t, out)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "login", entry["service"])
	assert.Equal(t, "userapp-login", entry["function"])
	assert.Equal(t, "7", entry["functionVersion"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_ServiceDefaultsToBinaryName(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	out := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Config{OutputPath: out})
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	entries := readEntries(t, out)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(os.Args[0]), entries[0]["service"])
	assert.NotContains(t, entries[0], "function")
}

func TestForEnv(t *testing.T) {
	t.Run("local development", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
		cfg := ForEnv("development", "debug", "server")
		assert.Equal(t, Config{Level: "debug", Encoding: EncodingConsole, Service: "server"}, cfg)
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
		assert.Equal(t, EncodingJSON, ForEnv("production", "info", "server").Encoding)
	})

	t.Run("lambda in development", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "userapp-register")
		assert.True(t, InLambda())
		assert.Equal(t, EncodingJSON, ForEnv("development", "info", "register").Encoding)
	})
}
