package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Info("CreateBooking: specialist=%d", 42)
	log.Debug("debug line")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CreateBooking: specialist=42")
	assert.Contains(t, string(data), "debug line")
}

func TestNew_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := NewWithOptions(path, "warn", Options{JSON: true})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("visible %s", "warning")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"msg":"visible warning"`)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
