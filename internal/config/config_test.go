package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastfhir/fhir-r5-go/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, int64(64<<20), cfg.MaxBodySize)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FHIRTOOL_LOG_LEVEL", "DEBUG")
	t.Setenv("FHIRTOOL_PRETTY", "true")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fhirtool.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log_format: json\nmax_body_size: 1024\n"), 0o600))

	cfg, err := config.Load(config.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int64(1024), cfg.MaxBodySize)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("FHIRTOOL_LOG_FORMAT", "xml")

	_, err := config.Load(config.New(), "")
	assert.ErrorContains(t, err, "invalid config")

	_, err = config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLevelDisabled(t *testing.T) {
	cfg := &config.Config{LogLevel: "disabled"}
	assert.Equal(t, zerolog.Disabled, cfg.Level())
}
