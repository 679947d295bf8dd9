package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultConfigWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should have been written")
}

func TestLoadReadsValuesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9999\"\nalive_interval: 10s\nmax_frame_size: 1024\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.AliveInterval)
	assert.Equal(t, int64(1024), cfg.MaxFrameSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().ShutdownTimeout, cfg.ShutdownTimeout)
}

func TestLoadReportsDefaultConfigCreation(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, _, err := Load(&logger, path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Contains(t, buf.String(), "created default config")
	assert.NotContains(t, buf.String(), "failed to write default config")
}

func TestDefaultHeartbeatEnabled(t *testing.T) {
	assert.Equal(t, 5*time.Second, Default().AliveInterval)
	assert.Equal(t, int64(1<<16), Default().MaxFrameSize)
}
